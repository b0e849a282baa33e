package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"seothon.dev/web/internal/handlers"
	"seothon.dev/web/internal/i18n"
	"seothon.dev/web/internal/nav"
	"seothon.dev/web/internal/seo"
)

func SiteHeader(p handlers.PageData) g.Node {
	return Header(Class("site-header"), marker(seo.MarkerSection, "header"),
		A(Class("brand"), Href("/"),
			Img(Src("/assets/logo.png"), Alt(""), Width("32"), Height("32")),
			Span(g.Text(p.SiteName)),
		),
		Nav(Class("site-nav"), Aria("label", p.T("nav.aria")),
			Ul(g.Group(g.Map(p.Nav, func(it nav.RenderedItem) g.Node {
				return Li(A(
					Href(it.Href),
					g.If(it.Active, Aria("current", "page")),
					g.Text(p.T(it.LabelKey)),
				))
			}))),
		),
		languageSwitcher(p),
	)
}

func languageSwitcher(p handlers.PageData) g.Node {
	if len(p.Locales) < 2 {
		return nil
	}
	return Nav(Class("lang-switch"), Aria("label", p.T("nav.language")),
		Ul(g.Group(g.Map(p.Locales, func(l string) g.Node {
			return Li(A(
				Href(p.Path+"?hl="+l),
				g.Attr("hreflang", l),
				Lang(l),
				g.If(l == p.Lang, Aria("current", "true")),
				g.Text(i18n.NativeName(l)),
			))
		}))),
	)
}

// BreadcrumbNav renders the trail; the matching BreadcrumbList is emitted in the head.
func BreadcrumbNav(p handlers.PageData) g.Node {
	return Nav(Class("breadcrumbs"), Aria("label", p.T("breadcrumbs.aria")),
		Ol(g.Group(g.Map(p.Breadcrumbs, func(c nav.Crumb) g.Node {
			if c.Active {
				return Li(Span(Aria("current", "page"), g.Text(c.Text(p.Translator()))))
			}
			return Li(A(Href(c.Href), g.Text(c.Text(p.Translator()))))
		}))),
	)
}

func SiteFooter(p handlers.PageData) g.Node {
	return Footer(Class("site-footer"), marker(seo.MarkerSection, "footer"),
		Div(Class("footer-columns"),
			Div(
				H2(g.Text(p.T("footer.company"))),
				Ul(g.Group(g.Map(nav.Main, func(it nav.Item) g.Node {
					return Li(A(Href(it.Path), g.Text(p.T(it.LabelKey))))
				}))),
			),
			Div(marker(seo.MarkerContent, "ai-links"),
				H2(g.Text(p.T("footer.ai"))),
				Ul(
					Li(A(Href("/api/ai/data"), g.Text(p.T("footer.ai.data")))),
					Li(A(Href("/api/ai/manifest"), g.Text(p.T("footer.ai.manifest")))),
					Li(A(Href("/.well-known/ai.json"), g.Text(p.T("footer.ai.discovery")))),
					Li(A(Href("/sitemap.json"), g.Text(p.T("footer.ai.sitemap")))),
				),
			),
		),
		P(Class("copyright"), g.Textf("© %d %s. %s", p.Year, p.SiteName, p.T("footer.rights"))),
		g.If(p.FooterJSONLD != "", Script(Type("application/ld+json"), g.Raw(p.FooterJSONLD))),
	)
}
