package components

import (
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"seothon.dev/web/internal/format"
	"seothon.dev/web/internal/handlers"
	"seothon.dev/web/internal/seo"
	"seothon.dev/web/internal/site"
)

func Services(p handlers.PageData, services []site.Service) g.Node {
	return Section(Class("services"), marker(seo.MarkerSection, "services"),
		H1(g.Text(p.T("services.title"))),
		P(Class("lead"), g.Text(p.T("services.lead"))),
		g.Group(g.Map(services, func(s site.Service) g.Node {
			price := format.Price(s.Pricing.From, s.Pricing.Currency, p.Lang)
			return Article(ID(s.ID), Class("card service"), marker(seo.MarkerContent, "service-"+s.ID),
				H2(g.Text(s.Name)),
				P(g.Text(s.Description)),
				H3(g.Text(p.T("services.features"))),
				Ul(g.Group(g.Map(s.Features, func(f string) g.Node { return Li(g.Text(f)) }))),
				P(Class("price"), g.Text(p.Tf("services.pricing."+string(s.Pricing.Type), price))),
				A(Class("button"), Href("/contact?service="+url.QueryEscape(s.ID)), g.Text(p.T("services.cta"))),
			)
		})),
	)
}
