package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"seothon.dev/web/internal/handlers"
	"seothon.dev/web/internal/seo"
)

const gtagSnippet = `window.dataLayer=window.dataLayer||[];function gtag(){dataLayer.push(arguments);}gtag('js',new Date());gtag('config','%s');`

// Layout wraps page content in the document shell: head metadata, structured data,
// header, breadcrumbs and footer.
func Layout(p handlers.PageData, content ...g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang(p.Lang),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(p.SEO.Title)),
				Meta(Name("description"), Content(p.SEO.Description)),
				g.If(len(p.Keywords) > 0, Meta(Name("keywords"), Content(strings.Join(p.Keywords, ", ")))),
				Link(Rel("canonical"), Href(p.SEO.Canonical)),
				alternates(p),
				openGraph(p),
				twitterCard(p.SEO.Twitter),
				aiMeta(p.BaseURL),
				Link(Rel("icon"), Href("/assets/logo.png")),
				Link(Rel("stylesheet"), Href("/assets/site.css")),
				Link(Rel("alternate"), Type("application/json"), Href("/api/ai/data"), Title("AI data")),
				g.Group(g.Map(p.JSONLD, func(block string) g.Node {
					return Script(Type("application/ld+json"), g.Raw(block))
				})),
				analytics(p.Analytics),
			),
			Body(
				A(Class("skip-link"), Href("#main"), g.Text(p.T("nav.skip"))),
				SiteHeader(p),
				g.If(len(p.Breadcrumbs) > 1, BreadcrumbNav(p)),
				Main(ID("main"), marker(seo.MarkerSection, "main"), g.Group(content)),
				SiteFooter(p),
				Script(Src("/assets/site.js"), Defer()),
			),
		),
	})
}

func alternates(p handlers.PageData) g.Node {
	if len(p.Locales) < 2 {
		return nil
	}
	return g.Group(g.Map(p.Locales, func(l string) g.Node {
		return Link(Rel("alternate"), g.Attr("hreflang", l), Href(fmt.Sprintf("%s?hl=%s", p.SEO.Canonical, l)))
	}))
}

func openGraph(p handlers.PageData) g.Node {
	og := p.SEO.OpenGraph
	return g.Group([]g.Node{
		property("og:title", og.Title),
		property("og:description", og.Description),
		property("og:url", og.URL),
		property("og:type", og.Type),
		property("og:site_name", p.SiteName),
		property("og:locale", p.Lang),
		g.If(og.Image != "", property("og:image", og.Image)),
	})
}

func twitterCard(t seo.Twitter) g.Node {
	return g.Group([]g.Node{
		Meta(Name("twitter:card"), Content(t.Card)),
		Meta(Name("twitter:title"), Content(t.Title)),
		Meta(Name("twitter:description"), Content(t.Description)),
		g.If(t.Image != "", Meta(Name("twitter:image"), Content(t.Image))),
	})
}

// aiMeta points crawlers at the machine-readable surfaces.
func aiMeta(baseURL string) g.Node {
	return g.Group([]g.Node{
		Meta(Name("ai-accessible"), Content("true")),
		Meta(Name("ai-content-type"), Content("business-website")),
		Meta(Name("ai-discovery"), Content(baseURL+"/.well-known/ai.json")),
		Meta(Name("ai-structured-data"), Content(baseURL+"/api/ai/data")),
		Meta(Name("ai-sitemap"), Content(baseURL+"/sitemap.json")),
	})
}

func property(name, value string) g.Node {
	return Meta(g.Attr("property", name), Content(value))
}

func analytics(a handlers.Analytics) g.Node {
	if !a.Enabled() {
		return nil
	}
	return g.Group([]g.Node{
		Script(Async(), Src("https://www.googletagmanager.com/gtag/js?id="+a.GA4MeasurementID)),
		Script(g.Raw(fmt.Sprintf(gtagSnippet, a.GA4MeasurementID))),
	})
}

// marker tags an element as a named region for AI readers.
func marker(kind seo.MarkerKind, id string) g.Node {
	attrs := seo.ContentMarker(kind, id)
	nodes := make([]g.Node, 0, len(attrs))
	for name, value := range attrs {
		nodes = append(nodes, g.Attr(name, value))
	}
	return g.Group(nodes)
}
