package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"seothon.dev/web/internal/handlers"
	"seothon.dev/web/internal/seo"
	"seothon.dev/web/internal/site"
)

type HomeView struct {
	Services []site.Service
	FAQs     []site.FAQ
}

var homeFeatures = []string{"structured", "endpoint", "markers"}

func Home(p handlers.PageData, v HomeView) g.Node {
	return g.Group([]g.Node{
		Section(Class("hero"), marker(seo.MarkerSection, "hero"),
			H1(g.Text(p.T("home.hero.heading"))),
			P(Class("lead"), g.Text(p.T("home.hero.lead"))),
			Div(Class("actions"),
				A(Class("button primary"), Href("/contact"), g.Text(p.T("home.hero.cta"))),
				A(Class("button"), Href("/ai-endpoint"), g.Text(p.T("home.hero.secondary"))),
			),
		),
		Section(Class("features"), marker(seo.MarkerSection, "features"),
			H2(g.Text(p.T("home.features.heading"))),
			Div(Class("grid"), g.Group(g.Map(homeFeatures, func(key string) g.Node {
				return Article(Class("card"), marker(seo.MarkerContent, "feature-"+key),
					H3(g.Text(p.T("home.feature."+key+".title"))),
					P(g.Text(p.T("home.feature."+key+".body"))),
				)
			}))),
		),
		Section(Class("services-preview"), marker(seo.MarkerSection, "services"),
			H2(g.Text(p.T("home.services.heading"))),
			Ul(g.Group(g.Map(v.Services, func(s site.Service) g.Node {
				return Li(marker(seo.MarkerContent, "service-"+s.ID),
					A(Href("/services#"+s.ID), Strong(g.Text(s.Name))),
					g.Text(" "+s.Description),
				)
			}))),
			A(Href("/services"), g.Text(p.T("home.services.more"))),
		),
		Section(Class("faq"), marker(seo.MarkerSection, "faq"),
			H2(g.Text(p.T("home.faq.heading"))),
			g.Group(g.Map(v.FAQs, func(f site.FAQ) g.Node {
				return Article(Class("faq-item"), marker(seo.MarkerContent, "faq"),
					H3(g.Text(f.Question)),
					P(g.Text(f.Answer)),
				)
			})),
		),
		Section(Class("cta"), marker(seo.MarkerSection, "cta"),
			H2(g.Text(p.T("home.cta.heading"))),
			P(g.Text(p.T("home.cta.body"))),
			A(Class("button primary"), Href("/contact"), g.Text(p.T("home.hero.cta"))),
		),
	})
}
