package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"seothon.dev/web/internal/cms"
	"seothon.dev/web/internal/components"
	"seothon.dev/web/internal/contact"
	"seothon.dev/web/internal/handlers"
	"seothon.dev/web/internal/middleware"
	"seothon.dev/web/internal/observability"
	"seothon.dev/web/internal/seo"
	"seothon.dev/web/internal/site"
)

const isoDate = "2006-01-02"

// catalogPage builds page data for a page listed in the catalog.
func (a *app) catalogPage(r *http.Request, path, titleKey string) handlers.PageData {
	page, _ := a.catalog.Page(path)
	p := a.pageData(r, pageMeta{
		Path:        path,
		Title:       a.bundle.T(middleware.Lang(r), titleKey),
		Description: page.Description,
	})
	p.AddJSONLD(r.Context(), a.webPage(page, p.SEO.Title, ""))
	return p
}

func (a *app) webPage(page site.Page, name, modified string) map[string]any {
	return seo.WebPage(seo.PageInfo{
		URL:             a.catalog.URL(page.URL),
		Name:            name,
		Description:     page.Description,
		DateModified:    modified,
		OrganizationURL: a.catalog.BaseURL,
		Type:            page.Type,
	})
}

func (a *app) home(w http.ResponseWriter, r *http.Request) {
	p := a.catalogPage(r, "/", "home.title")
	p.AddJSONLD(r.Context(), seo.FAQPage(a.catalog.FAQEntries()))
	a.render(w, r, http.StatusOK, p, components.Home(p, components.HomeView{
		Services: a.catalog.Services(),
		FAQs:     a.catalog.FAQs(),
	}))
}

func (a *app) about(w http.ResponseWriter, r *http.Request) {
	lang := middleware.Lang(r)
	doc, err := a.content.Page(r.Context(), cms.KindPage, "about", lang)
	if err != nil {
		a.contentError(w, r, err)
		return
	}
	catalogEntry, _ := a.catalog.Page("/about")
	title := doc.Title
	if doc.SEO.Title != "" {
		title = doc.SEO.Title
	}
	p := a.pageData(r, pageMeta{
		Path:        "/about",
		Title:       title,
		Description: doc.Description(),
		Image:       doc.SEO.OGImage,
	})
	catalogEntry.Description = doc.Description()
	p.AddJSONLD(r.Context(), a.webPage(catalogEntry, p.SEO.Title, dateOf(doc.UpdatedAt)))
	a.render(w, r, http.StatusOK, p, components.About(p, doc))
}

func (a *app) services(w http.ResponseWriter, r *http.Request) {
	p := a.catalogPage(r, "/services", "services.title")
	services := a.catalog.Services()
	for _, s := range services {
		p.AddJSONLD(r.Context(), seo.Service(a.catalog.ServiceInfo(s)))
	}
	a.render(w, r, http.StatusOK, p, components.Services(p, services))
}

func (a *app) contactView(form contact.Form) components.ContactView {
	return components.ContactView{
		Form:         form,
		Services:     a.catalog.Services(),
		Organization: a.catalog.Organization(),
	}
}

func (a *app) contactPageData(r *http.Request) handlers.PageData {
	p := a.catalogPage(r, "/contact", "contact.title")
	p.AddJSONLD(r.Context(), seo.ContactPoint(a.catalog.ContactInfo()))
	return p
}

func (a *app) contactPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	v := a.contactView(contact.Prefill(query))
	// only echo references this server could have issued
	if ref := query.Get("sent"); ref != "" {
		if _, err := ulid.ParseStrict(ref); err == nil {
			v.Sent = ref
			v.Form = contact.Form{}
		}
	}
	p := a.contactPageData(r)
	a.render(w, r, http.StatusOK, p, components.Contact(p, v))
}

func (a *app) contactSubmit(w http.ResponseWriter, r *http.Request) {
	form, err := contact.ParseForm(r)
	if err != nil {
		p := a.contactPageData(r)
		v := a.contactView(form)
		v.Errors = contact.FieldErrors{"message": "contact.error.message"}
		a.render(w, r, http.StatusBadRequest, p, components.Contact(p, v))
		return
	}

	sub, err := a.contact.Submit(r.Context(), form, middleware.Lang(r))
	var invalid *contact.ValidationError
	switch {
	case errors.As(err, &invalid):
		p := a.contactPageData(r)
		v := a.contactView(form)
		v.Errors = invalid.Fields
		a.render(w, r, http.StatusUnprocessableEntity, p, components.Contact(p, v))
		return
	case err != nil:
		observability.FromContext(r.Context()).Error("contact submission failed", zap.Error(err))
		a.renderError(w, r, http.StatusBadGateway)
		return
	}
	http.Redirect(w, r, "/contact?sent="+sub.Reference, http.StatusSeeOther)
}

// csrfRejected re-renders the contact form with the visitor's input and a fresh token.
func (a *app) csrfRejected(w http.ResponseWriter, r *http.Request) {
	observability.FromContext(r.Context()).Warn("csrf validation failed", zap.String("path", r.URL.Path))
	if r.URL.Path != "/contact" {
		a.renderError(w, r, http.StatusForbidden)
		return
	}
	form, _ := contact.ParseForm(r)
	p := a.contactPageData(r)
	v := a.contactView(form)
	v.CSRFRejected = true
	a.render(w, r, http.StatusForbidden, p, components.Contact(p, v))
}

func (a *app) aiEndpoint(w http.ResponseWriter, r *http.Request) {
	p := a.catalogPage(r, "/ai-endpoint", "ai.title")
	a.render(w, r, http.StatusOK, p, components.AIEndpoint(p, seo.Serialize(a.catalog.AIData(a.now()))))
}

func (a *app) guides(w http.ResponseWriter, r *http.Request) {
	lang := middleware.Lang(r)
	list, err := a.content.Guides(r.Context(), lang)
	if err != nil {
		a.contentError(w, r, err)
		return
	}
	p := a.pageData(r, pageMeta{
		Path:        "/guides",
		Title:       a.bundle.T(lang, "guides.title"),
		Description: a.bundle.T(lang, "guides.lead"),
	})
	p.AddJSONLD(r.Context(), seo.WebPage(seo.PageInfo{
		URL:             a.catalog.URL("/guides"),
		Name:            p.SEO.Title,
		Description:     p.SEO.Description,
		OrganizationURL: a.catalog.BaseURL,
		Type:            "CollectionPage",
	}))
	a.render(w, r, http.StatusOK, p, components.Guides(p, list))
}

func (a *app) guide(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	doc, err := a.content.Page(r.Context(), cms.KindGuide, slug, middleware.Lang(r))
	if err != nil {
		a.contentError(w, r, err)
		return
	}
	title := doc.Title
	if doc.SEO.Title != "" {
		title = doc.SEO.Title
	}
	image := doc.SEO.OGImage
	if image == "" {
		image = doc.Image
	}
	path := "/guides/" + doc.Slug
	p := a.pageData(r, pageMeta{
		Path:        path,
		Title:       title,
		Description: doc.Description(),
		Image:       image,
		ContentType: "article",
	})
	p.Breadcrumbs[len(p.Breadcrumbs)-1].Label = doc.Title

	articleImage := p.SEO.OpenGraph.Image
	authorURL := doc.Author.URL
	if authorURL == "" {
		authorURL = a.catalog.BaseURL
	}
	p.AddJSONLD(r.Context(), seo.Article(seo.ArticleInfo{
		Headline:        doc.Title,
		Description:     doc.Description(),
		URL:             a.catalog.URL(path),
		DatePublished:   dateOf(doc.PublishedAt),
		DateModified:    dateOf(doc.UpdatedAt),
		AuthorName:      doc.Author.Name,
		AuthorURL:       authorURL,
		Image:           articleImage,
		OrganizationURL: a.catalog.BaseURL,
	}))
	a.render(w, r, http.StatusOK, p, components.Guide(p, doc))
}

func (a *app) contentError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, cms.ErrNotFound) {
		a.notFound(w, r)
		return
	}
	observability.FromContext(r.Context()).Error("load content", zap.String("path", r.URL.Path), zap.Error(err))
	a.renderError(w, r, http.StatusInternalServerError)
}

func dateOf(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(isoDate)
}
