package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"seothon.dev/web/internal/handlers"
	"seothon.dev/web/internal/seo"
)

// AIEndpoint shows the AI data document with copy and download controls wired by site.js.
func AIEndpoint(p handlers.PageData, document string) g.Node {
	return Section(Class("ai-endpoint"), marker(seo.MarkerSection, "ai-data"),
		H1(g.Text(p.T("ai.title"))),
		P(Class("lead"), g.Text(p.T("ai.lead"))),
		Div(Class("actions"),
			Button(Type("button"), Class("button"), Data("copy-target", "ai-json"), g.Text(p.T("ai.copy"))),
			A(Class("button"), Href("/api/ai/data"), g.Attr("download", "ai-data.json"), g.Text(p.T("ai.download"))),
			A(Class("button"), Href("/api/ai/manifest"), g.Text(p.T("ai.manifest"))),
		),
		Pre(Class("json"), marker(seo.MarkerContent, "ai-json"),
			Code(ID("ai-json"), g.Text(document)),
		),
	)
}
