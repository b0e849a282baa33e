package components

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"seothon.dev/web/internal/cms"
	"seothon.dev/web/internal/format"
	"seothon.dev/web/internal/handlers"
	"seothon.dev/web/internal/seo"
)

// About renders a markdown page. HTML was sanitized when the page was loaded.
func About(p handlers.PageData, page cms.ContentPage) g.Node {
	return Article(Class("prose"), marker(seo.MarkerSection, "about"),
		H1(g.Text(page.Title)),
		g.If(page.Summary != "", P(Class("lead"), g.Text(page.Summary))),
		g.Raw(page.HTML),
	)
}

func Guides(p handlers.PageData, guides []cms.ContentPage) g.Node {
	return Section(Class("guides"), marker(seo.MarkerSection, "guides"),
		H1(g.Text(p.T("guides.title"))),
		P(Class("lead"), g.Text(p.T("guides.lead"))),
		g.If(len(guides) == 0, P(g.Text(p.T("guides.empty")))),
		g.Group(g.Map(guides, func(guide cms.ContentPage) g.Node {
			return Article(Class("card"), marker(seo.MarkerContent, "guide-"+guide.Slug),
				H2(A(Href("/guides/"+guide.Slug), g.Text(guide.Title))),
				P(g.Text(guide.Description())),
				g.If(!guide.PublishedAt.IsZero(), P(Class("meta"), dateTime(guide.PublishedAt, p.Lang))),
			)
		})),
	)
}

func Guide(p handlers.PageData, guide cms.ContentPage) g.Node {
	return Article(Class("prose"), marker(seo.MarkerSection, "guide"),
		H1(g.Text(guide.Title)),
		P(Class("meta"),
			g.If(guide.Author.Name != "", Span(g.Text(p.Tf("guides.by", guide.Author.Name)+" "))),
			g.If(!guide.UpdatedAt.IsZero(), Span(g.Text(p.Tf("guides.updated", "")), dateTime(guide.UpdatedAt, p.Lang))),
		),
		g.Raw(guide.HTML),
	)
}

func dateTime(t time.Time, lang string) g.Node {
	return g.El("time", g.Attr("datetime", t.Format("2006-01-02")), g.Text(format.Date(t, lang)))
}
