package main

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"seothon.dev/web/internal/middleware"
	"seothon.dev/web/internal/observability"
	"seothon.dev/web/public"
)

func (a *app) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// RealIP trusts X-Forwarded-For; deploy behind a proxy that sets it.
	r.Use(chimw.RealIP)
	r.Use(observability.Tracing)
	r.Use(observability.RequestLogger(a.logger))
	r.Use(observability.Recovery(a.renderError))
	if a.cfg.Features.Metrics {
		r.Use(middleware.Metrics)
	}
	r.Use(middleware.AIHeaders)

	r.NotFound(middleware.Locale(a.bundle)(http.HandlerFunc(a.notFound)).ServeHTTP)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok")
	})
	r.Handle("/assets/*", http.StripPrefix("/assets", middleware.AssetsWithCache(public.Assets())))
	if a.cfg.Features.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}
	// streamable MCP keeps its own connection lifetime, so it skips compression and timeouts
	if a.cfg.Features.MCP {
		r.Handle("/mcp", a.mcp.Handler())
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.WriteDeadline(a.cfg.Server.RouteWriteTimeout))
		r.Use(chimw.Compress(5))
		r.Use(chimw.Timeout(a.cfg.Server.RequestTimeout))

		r.Get("/robots.txt", a.robots)
		r.Get("/sitemap.xml", a.sitemapXML)
		r.Get("/sitemap.json", a.sitemapJSON)
		r.Get("/.well-known/ai.json", a.discovery)
		r.Route("/api/ai", func(r chi.Router) {
			r.Use(middleware.CORS)
			r.Get("/data", a.aiData)
			r.Get("/manifest", a.aiManifest)
		})

		r.Group(func(r chi.Router) {
			r.Use(chimw.GetHead)
			r.Use(a.sessions.Middleware)
			r.Use(middleware.Locale(a.bundle))
			r.Use(a.sessions.CSRF(a.csrfRejected))

			r.Get("/", a.home)
			r.Get("/about", a.about)
			r.Get("/services", a.services)
			r.Get("/contact", a.contactPage)
			r.Post("/contact", a.contactSubmit)
			r.Get("/ai-endpoint", a.aiEndpoint)
			r.Get("/ai", func(w http.ResponseWriter, r *http.Request) {
				http.Redirect(w, r, "/ai-endpoint", http.StatusMovedPermanently)
			})
			r.Get("/guides", a.guides)
			r.Get("/guides/{slug}", a.guide)
		})
	})
	return r
}
