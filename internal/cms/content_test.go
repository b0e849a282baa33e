package cms

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"

	"seothon.dev/web/content"
)

func TestPageFromEmbeddedContent(t *testing.T) {
	t.Parallel()

	s := NewStore(content.FS, "en")
	page, err := s.Page(context.Background(), KindPage, "about", "en")
	require.NoError(t, err)
	require.Equal(t, "About Us", page.Title)
	require.Equal(t, "en", page.Lang)
	require.Contains(t, page.HTML, "<h2")
	require.Contains(t, page.HTML, "<strong>User-centric.</strong>")
	require.Equal(t, "Learn about our mission to create AI-optimized web solutions", page.Description())
}

func TestPageFallsBackToDefaultLanguage(t *testing.T) {
	t.Parallel()

	s := NewStore(content.FS, "en")
	g, err := s.Page(context.Background(), KindGuide, "what-is-ai-seo", "cs")
	require.NoError(t, err)
	require.Equal(t, "en", g.Lang)
	require.Equal(t, "Seothon Team", g.Author.Name)
	require.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), g.UpdatedAt)
}

func TestPageNotFound(t *testing.T) {
	t.Parallel()

	s := NewStore(content.FS, "en")
	for _, slug := range []string{"missing", "", "../pages/en/about", "a/b"} {
		_, err := s.Page(context.Background(), KindPage, slug, "en")
		require.ErrorIs(t, err, ErrNotFound, slug)
	}
}

func TestSanitizesMarkup(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"pages/en/x.md": {Data: []byte("Hello <script>alert(1)</script><a href=\"javascript:alert(1)\">link</a>\n")},
	}
	page, err := NewStore(fsys, "en").Page(context.Background(), KindPage, "x", "en")
	require.NoError(t, err)
	require.NotContains(t, page.HTML, "<script")
	require.NotContains(t, page.HTML, "javascript:")
	require.Equal(t, "X", page.Title)
}

func TestDescriptionFallsBackToBodySnippet(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("Structured data helps assistants. ", 10)
	fsys := fstest.MapFS{"pages/en/long.md": {Data: []byte("---\ntitle: Long\n---\n" + body)}}
	page, err := NewStore(fsys, "en").Page(context.Background(), KindPage, "long", "en")
	require.NoError(t, err)

	desc := page.Description()
	require.True(t, strings.HasSuffix(desc, "..."))
	require.NotContains(t, desc, "<p>")
	require.LessOrEqual(t, len([]rune(desc)), 163)
}

func TestDescriptionSnippetIsPlainText(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"pages/en/plain.md": {Data: []byte("---\ntitle: Plain\n---\nDon't panic & \"relax\" today.\n")}}
	page, err := NewStore(fsys, "en").Page(context.Background(), KindPage, "plain", "en")
	require.NoError(t, err)

	desc := page.Description()
	require.NotContains(t, desc, "&amp;")
	require.NotContains(t, desc, "\n")
	require.Equal(t, "Don’t panic & “relax” today.", desc)
}

func TestFrontMatterErrors(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"pages/en/bad.md": {Data: []byte("---\ntitle: [unclosed\n---\nbody")}}
	_, err := NewStore(fsys, "en").Page(context.Background(), KindPage, "bad", "en")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestGuidesNewestFirst(t *testing.T) {
	t.Parallel()

	guides, err := NewStore(content.FS, "en").Guides(context.Background(), "cs")
	require.NoError(t, err)
	require.Len(t, guides, 2)
	require.Equal(t, "structured-data-basics", guides[0].Slug)
	require.Equal(t, "what-is-ai-seo", guides[1].Slug)
}

func TestCacheHonoursTTL(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"pages/en/p.md": {Data: []byte("---\ntitle: One\n---\nbody")}}
	s := NewStore(fsys, "en", WithCacheTTL(time.Minute))
	now := time.Now()
	s.now = func() time.Time { return now }

	first, err := s.Page(context.Background(), KindPage, "p", "en")
	require.NoError(t, err)
	require.Equal(t, "One", first.Title)

	fsys["pages/en/p.md"] = &fstest.MapFile{Data: []byte("---\ntitle: Two\n---\nbody")}
	cached, err := s.Page(context.Background(), KindPage, "p", "en")
	require.NoError(t, err)
	require.Equal(t, "One", cached.Title)

	now = now.Add(2 * time.Minute)
	fresh, err := s.Page(context.Background(), KindPage, "p", "en")
	require.NoError(t, err)
	require.Equal(t, "Two", fresh.Title)
}
