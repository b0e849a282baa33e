package cms

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"

	"seothon.dev/web/internal/seo"
)

// ErrNotFound is returned when a content page cannot be located.
var ErrNotFound = errors.New("cms: not found")

const (
	KindPage  = "pages"
	KindGuide = "guides"
)

// ContentPage is a localized markdown document with its rendered, sanitized HTML.
type ContentPage struct {
	Kind        string
	Slug        string
	Lang        string
	Title       string
	Summary     string
	Body        string
	HTML        string
	Author      Author
	Image       string
	Tags        []string
	PublishedAt time.Time
	UpdatedAt   time.Time
	SEO         ContentSEO
}

type Author struct {
	Name string
	URL  string
}

// ContentSEO holds optional metadata overrides.
type ContentSEO struct {
	Title       string
	Description string
	OGImage     string
}

// Description prefers the SEO override, then the summary, then a snippet of the body.
func (p ContentPage) Description() string {
	if p.SEO.Description != "" {
		return p.SEO.Description
	}
	if p.Summary != "" {
		return p.Summary
	}
	text, err := seo.PlainText(strings.NewReader(p.HTML))
	if err != nil {
		return ""
	}
	return seo.TruncateDescription(text, seo.DefaultDescriptionLength, seo.WithHardCut())
}

type frontMatter struct {
	Title     string   `yaml:"title"`
	Summary   string   `yaml:"summary"`
	Author    string   `yaml:"author"`
	AuthorURL string   `yaml:"author_url"`
	Image     string   `yaml:"image"`
	Tags      []string `yaml:"tags"`
	Published string   `yaml:"published"`
	Updated   string   `yaml:"updated"`
	SEO       struct {
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		OGImage     string `yaml:"og_image"`
	} `yaml:"seo"`
}

// Store reads markdown from an fs.FS laid out as <kind>/<lang>/<slug>.md.
type Store struct {
	fsys     fs.FS
	fallback string
	ttl      time.Duration
	md       goldmark.Markdown
	policy   *bluemonday.Policy
	now      func() time.Time

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	page    ContentPage
	expires time.Time
}

type Option func(*Store)

// WithCacheTTL bounds how long a rendered page is reused. Zero disables caching.
func WithCacheTTL(d time.Duration) Option {
	return func(s *Store) { s.ttl = d }
}

// NewStore serves content from fsys, falling back to fallbackLang for missing translations.
func NewStore(fsys fs.FS, fallbackLang string, opts ...Option) *Store {
	s := &Store{
		fsys:     fsys,
		fallback: fallbackLang,
		ttl:      5 * time.Minute,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Typographer),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
		policy: bluemonday.UGCPolicy(),
		now:    time.Now,
		cache:  map[string]cacheEntry{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Page returns the document for kind/slug in lang, or the fallback language version.
func (s *Store) Page(ctx context.Context, kind, slug, lang string) (ContentPage, error) {
	if err := ctx.Err(); err != nil {
		return ContentPage{}, err
	}
	slug = sanitizeSlug(slug)
	if slug == "" {
		return ContentPage{}, ErrNotFound
	}
	key := strings.Join([]string{kind, lang, slug}, "|")
	if page, ok := s.cached(key); ok {
		return page, nil
	}

	candidates := []string{lang}
	if lang != s.fallback {
		candidates = append(candidates, s.fallback)
	}
	for _, l := range candidates {
		page, err := s.read(kind, slug, l)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return ContentPage{}, err
		}
		s.store(key, page)
		return clonePage(page), nil
	}
	return ContentPage{}, ErrNotFound
}

// Guides lists guides available in lang (with fallback), newest first.
func (s *Store) Guides(ctx context.Context, lang string) ([]ContentPage, error) {
	slugs := map[string]struct{}{}
	for _, l := range []string{lang, s.fallback} {
		entries, err := fs.ReadDir(s.fsys, path.Join(KindGuide, l))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("cms: list guides: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() || path.Ext(e.Name()) != ".md" {
				continue
			}
			slugs[strings.TrimSuffix(e.Name(), ".md")] = struct{}{}
		}
	}

	guides := make([]ContentPage, 0, len(slugs))
	for slug := range slugs {
		g, err := s.Page(ctx, KindGuide, slug, lang)
		if err != nil {
			return nil, err
		}
		guides = append(guides, g)
	}
	slices.SortFunc(guides, func(a, b ContentPage) int {
		if c := b.PublishedAt.Compare(a.PublishedAt); c != 0 {
			return c
		}
		return strings.Compare(a.Slug, b.Slug)
	})
	return guides, nil
}

func (s *Store) read(kind, slug, lang string) (ContentPage, error) {
	file := path.Join(kind, lang, slug+".md")
	data, err := fs.ReadFile(s.fsys, file)
	if errors.Is(err, fs.ErrNotExist) {
		return ContentPage{}, ErrNotFound
	}
	if err != nil {
		return ContentPage{}, err
	}

	fm, body := splitFrontMatter(string(data))
	var front frontMatter
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return ContentPage{}, fmt.Errorf("cms: parse front matter %s: %w", file, err)
		}
	}

	var buf bytes.Buffer
	if err := s.md.Convert([]byte(body), &buf); err != nil {
		return ContentPage{}, fmt.Errorf("cms: render %s: %w", file, err)
	}

	page := ContentPage{
		Kind:        kind,
		Slug:        slug,
		Lang:        lang,
		Title:       strings.TrimSpace(front.Title),
		Summary:     strings.TrimSpace(front.Summary),
		Body:        body,
		HTML:        string(s.policy.SanitizeBytes(buf.Bytes())),
		Author:      Author{Name: strings.TrimSpace(front.Author), URL: strings.TrimSpace(front.AuthorURL)},
		Image:       strings.TrimSpace(front.Image),
		Tags:        front.Tags,
		PublishedAt: parseDate(front.Published),
		UpdatedAt:   parseDate(front.Updated),
		SEO: ContentSEO{
			Title:       strings.TrimSpace(front.SEO.Title),
			Description: strings.TrimSpace(front.SEO.Description),
			OGImage:     strings.TrimSpace(front.SEO.OGImage),
		},
	}
	if page.Title == "" {
		page.Title = prettifySlug(slug)
	}
	if page.UpdatedAt.IsZero() {
		page.UpdatedAt = page.PublishedAt
	}
	return page, nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func parseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func prettifySlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.Trim(strings.TrimSpace(strings.ToLower(slug)), "/")
	if slug == "" || strings.Contains(slug, "..") || strings.ContainsAny(slug, `/\`) {
		return ""
	}
	return slug
}

func (s *Store) cached(key string) (ContentPage, bool) {
	if s.ttl <= 0 {
		return ContentPage{}, false
	}
	s.mu.RLock()
	entry, ok := s.cache[key]
	s.mu.RUnlock()
	if !ok || s.now().After(entry.expires) {
		return ContentPage{}, false
	}
	return clonePage(entry.page), true
}

func (s *Store) store(key string, page ContentPage) {
	if s.ttl <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[key] = cacheEntry{page: clonePage(page), expires: s.now().Add(s.ttl)}
}

func clonePage(src ContentPage) ContentPage {
	cp := src
	cp.Tags = slices.Clone(src.Tags)
	return cp
}
