package site

import (
	"context"
	"time"

	"seothon.dev/web/internal/cms"
	"seothon.dev/web/internal/seo"
)

// GuideLister is the part of the content store the sitemap reads.
type GuideLister interface {
	Guides(ctx context.Context, lang string) ([]cms.ContentPage, error)
}

// Sitemap lists the catalog pages, the guides index and every guide available in lang.
// Guides carry their own update date; everything else is dated now.
func (c *Catalog) Sitemap(ctx context.Context, guides GuideLister, lang string, now time.Time) ([]seo.SitemapEntry, error) {
	list, err := guides.Guides(ctx, lang)
	if err != nil {
		return nil, err
	}
	clock := seo.WithClock(func() time.Time { return now })
	entries := append(c.SitemapEntries(now), seo.NewSitemapEntry(c.URL("/guides"),
		clock,
		seo.WithChangeFrequency(seo.ChangeWeekly),
		seo.WithPriority(0.7),
	))
	for _, g := range list {
		opts := []seo.SitemapOption{clock, seo.WithChangeFrequency(seo.ChangeMonthly), seo.WithPriority(0.6)}
		if !g.UpdatedAt.IsZero() {
			opts = append(opts, seo.WithLastModified(g.UpdatedAt.UTC().Format(time.DateOnly)))
		}
		entries = append(entries, seo.NewSitemapEntry(c.URL("/guides/"+g.Slug), opts...))
	}
	return entries, nil
}
