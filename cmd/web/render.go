package main

import (
	"bytes"
	"net/http"
	"strings"

	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"seothon.dev/web/internal/components"
	"seothon.dev/web/internal/handlers"
	"seothon.dev/web/internal/httpx"
	"seothon.dev/web/internal/middleware"
	"seothon.dev/web/internal/nav"
	"seothon.dev/web/internal/observability"
	"seothon.dev/web/internal/seo"
)

// pageMeta is the per-page input to the head and the site-wide structured data.
type pageMeta struct {
	Path        string
	Title       string
	Description string
	Image       string
	ContentType string
}

func (a *app) pageData(r *http.Request, meta pageMeta) handlers.PageData {
	lang := middleware.Lang(r)
	p := handlers.NewPageData(lang, meta.Path, func(key string) string { return a.bundle.T(lang, key) })
	org := a.catalog.Organization()
	p.Locales = a.bundle.Supported()
	p.BaseURL = a.catalog.BaseURL
	p.SiteName = org.Name
	p.Year = a.now().Year()
	p.Analytics = a.analytics
	p.CSRFToken = middleware.CSRFToken(r)

	title := org.Name
	if meta.Title != "" && meta.Title != org.Name {
		title = meta.Title + " | " + org.Name
	}
	image := meta.Image
	if image == "" {
		image = org.Logo
	} else if strings.HasPrefix(image, "/") {
		image = a.catalog.URL(image)
	}
	p.SEO = seo.MetaTags(title, meta.Description, a.catalog.URL(meta.Path), image, meta.ContentType)

	ctx := r.Context()
	p.AddJSONLD(ctx,
		seo.Organization(a.catalog.OrganizationInfo()),
		seo.WebSite(a.catalog.SiteInfo(lang)),
	)
	p.SetFooterJSONLD(ctx, seo.Footer(org.Name, p.Year))
	return p
}

// render writes content inside the layout. Keywords are derived from the rendered
// main content and breadcrumbs are published once the handler has settled their labels.
func (a *app) render(w http.ResponseWriter, r *http.Request, status int, p handlers.PageData, content g.Node) {
	logger := observability.FromContext(r.Context())

	var main bytes.Buffer
	if err := content.Render(&main); err != nil {
		logger.Error("render page content", zap.String("path", p.Path), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if text, err := seo.PlainText(bytes.NewReader(main.Bytes())); err == nil {
		p.Keywords = seo.ExtractKeywords(text, seo.DefaultKeywordLimit)
	}
	if len(p.Breadcrumbs) > 1 {
		p.AddJSONLD(r.Context(), seo.BreadcrumbList(nav.Structured(p.Breadcrumbs, p.BaseURL, p.Translator())))
	}

	var page bytes.Buffer
	if err := components.Layout(p, g.Raw(main.String())).Render(&page); err != nil {
		logger.Error("render layout", zap.String("path", p.Path), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = page.WriteTo(w)
}

func (a *app) notFound(w http.ResponseWriter, r *http.Request) {
	if isAPIRequest(r) {
		httpx.WriteError(r.Context(), w, httpx.FromStatus(http.StatusNotFound))
		return
	}
	lang := middleware.Lang(r)
	p := a.pageData(r, pageMeta{
		Path:        r.URL.Path,
		Title:       a.bundle.T(lang, "notfound.title"),
		Description: a.bundle.T(lang, "notfound.body"),
	})
	p.Breadcrumbs = p.Breadcrumbs[:1]
	a.render(w, r, http.StatusNotFound, p, components.NotFound(p))
}

// renderError is the recovery writer: JSON for API callers, the error page otherwise.
func (a *app) renderError(w http.ResponseWriter, r *http.Request, status int) {
	if isAPIRequest(r) {
		httpx.WriteError(r.Context(), w, httpx.FromStatus(status))
		return
	}
	lang := middleware.Lang(r)
	p := a.pageData(r, pageMeta{
		Path:        r.URL.Path,
		Title:       a.bundle.T(lang, "error.title"),
		Description: a.bundle.T(lang, "error.body"),
	})
	p.Breadcrumbs = p.Breadcrumbs[:1]
	a.render(w, r, status, p, components.ErrorPage(p))
}

func isAPIRequest(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/") || strings.HasPrefix(r.URL.Path, "/mcp")
}
