package nav

import (
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"seothon.dev/web/internal/seo"
)

// Item represents a top-level navigation item.
type Item struct {
	Path     string // e.g. "/services"
	LabelKey string // i18n key, e.g. "nav.services"
}

// RenderedItem is the view model for the header.
type RenderedItem struct {
	Href     string
	LabelKey string
	Active   bool
}

// Crumb represents a breadcrumb entry. If Label is set it wins over LabelKey.
type Crumb struct {
	Href     string
	LabelKey string
	Label    string
	Active   bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/", LabelKey: "nav.home"},
	{Path: "/about", LabelKey: "nav.about"},
	{Path: "/services", LabelKey: "nav.services"},
	{Path: "/guides", LabelKey: "nav.guides"},
	{Path: "/contact", LabelKey: "nav.contact"},
	{Path: "/ai-endpoint", LabelKey: "nav.ai"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:     it.Path,
			LabelKey: it.LabelKey,
			Active:   isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds entries from the current path: Home first, known sections by
// label key, deeper segments as prettified slugs.
func Breadcrumbs(currentPath string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", LabelKey: "nav.home", Active: currentPath == "/"}}
	clean := path.Clean(currentPath)
	if clean == "/" || clean == "." {
		return crumbs
	}

	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")
	top := "/" + parts[0]
	crumb := Crumb{Href: top, Label: titleFromSegment(parts[0]), Active: len(parts) == 1}
	for _, it := range Main {
		if it.Path == top {
			crumb.LabelKey = it.LabelKey
			crumb.Label = ""
			break
		}
	}
	crumbs = append(crumbs, crumb)

	href := top
	for i := 1; i < len(parts); i++ {
		href += "/" + parts[i]
		crumbs = append(crumbs, Crumb{
			Href:   href,
			Label:  titleFromSegment(parts[i]),
			Active: i == len(parts)-1,
		})
	}
	return crumbs
}

// Text resolves the crumb's display text through translate.
func (c Crumb) Text(translate func(key string) string) string {
	if c.Label != "" || c.LabelKey == "" {
		return c.Label
	}
	return translate(c.LabelKey)
}

// Structured converts crumbs into absolute-URL breadcrumb entries for JSON-LD.
func Structured(crumbs []Crumb, baseURL string, translate func(key string) string) []seo.BreadcrumbEntry {
	base := strings.TrimRight(baseURL, "/")
	out := make([]seo.BreadcrumbEntry, 0, len(crumbs))
	for _, c := range crumbs {
		u := base
		if c.Href != "/" {
			u = base + c.Href
		}
		out = append(out, seo.BreadcrumbEntry{Name: c.Text(translate), URL: u})
	}
	return out
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	s := strings.NewReplacer("-", " ", "_", " ").Replace(seg)
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
