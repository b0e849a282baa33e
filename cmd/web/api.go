package main

import (
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"seothon.dev/web/internal/httpx"
	"seothon.dev/web/internal/middleware"
	"seothon.dev/web/internal/observability"
	"seothon.dev/web/internal/seo"
)

const aiCacheControl = "public, max-age=3600, s-maxage=3600, stale-while-revalidate=86400"

func (a *app) aiData(w http.ResponseWriter, r *http.Request) {
	middleware.AIRequestsTotal.WithLabelValues("data").Inc()
	a.writeJSON(w, r, a.catalog.AIData(a.now()))
}

func (a *app) aiManifest(w http.ResponseWriter, r *http.Request) {
	middleware.AIRequestsTotal.WithLabelValues("manifest").Inc()
	a.writeJSON(w, r, a.catalog.Manifest())
}

func (a *app) discovery(w http.ResponseWriter, r *http.Request) {
	middleware.AIRequestsTotal.WithLabelValues("discovery").Inc()
	a.writeJSON(w, r, a.catalog.Discovery(a.cfg.Features.MCP))
}

func (a *app) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	if err := httpx.WriteJSON(w, http.StatusOK, v, aiCacheControl); err != nil {
		observability.FromContext(r.Context()).Error("write json", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

func (a *app) sitemapEntries(r *http.Request) ([]seo.SitemapEntry, error) {
	return a.catalog.Sitemap(r.Context(), a.content, a.bundle.Fallback(), a.now())
}

func (a *app) sitemapXML(w http.ResponseWriter, r *http.Request) {
	middleware.AIRequestsTotal.WithLabelValues("sitemap").Inc()
	entries, err := a.sitemapEntries(r)
	if err != nil {
		a.sitemapFailed(w, r, err)
		return
	}
	body, err := seo.SitemapXML(entries)
	if err != nil {
		a.sitemapFailed(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", aiCacheControl)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (a *app) sitemapJSON(w http.ResponseWriter, r *http.Request) {
	middleware.AIRequestsTotal.WithLabelValues("sitemap").Inc()
	entries, err := a.sitemapEntries(r)
	if err != nil {
		a.sitemapFailed(w, r, err)
		return
	}
	a.writeJSON(w, r, entries)
}

func (a *app) sitemapFailed(w http.ResponseWriter, r *http.Request, err error) {
	observability.FromContext(r.Context()).Error("build sitemap", zap.Error(err))
	httpx.WriteError(r.Context(), w, httpx.FromStatus(http.StatusInternalServerError))
}

func (a *app) robots(w http.ResponseWriter, _ *http.Request) {
	var b strings.Builder
	b.WriteString("User-agent: *\nAllow: /\n")
	if a.cfg.Features.MCP {
		b.WriteString("Disallow: /mcp\n")
	}
	fmt.Fprintf(&b, "\nSitemap: %s\n", a.catalog.URL("/sitemap.xml"))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", aiCacheControl)
	_, _ = w.Write([]byte(b.String()))
}
