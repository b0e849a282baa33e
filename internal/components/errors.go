package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"seothon.dev/web/internal/handlers"
	"seothon.dev/web/internal/seo"
)

func NotFound(p handlers.PageData) g.Node {
	return Section(Class("not-found"), marker(seo.MarkerSection, "not-found"),
		H1(g.Text(p.T("notfound.title"))),
		P(g.Text(p.T("notfound.body"))),
		A(Class("button"), Href("/"), g.Text(p.T("notfound.home"))),
	)
}

func ErrorPage(p handlers.PageData) g.Node {
	return Section(Class("error"), marker(seo.MarkerSection, "error"),
		H1(g.Text(p.T("error.title"))),
		P(g.Text(p.T("error.body"))),
		A(Class("button"), Href("/"), g.Text(p.T("notfound.home"))),
	)
}
