package components

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"seothon.dev/web/internal/contact"
	"seothon.dev/web/internal/handlers"
	"seothon.dev/web/internal/seo"
	"seothon.dev/web/internal/site"
)

var catalog = site.New("https://seothon.dev")

func testPage(path string) handlers.PageData {
	p := handlers.NewPageData("en", path, func(key string) string {
		switch key {
		case "services.pricing.project":
			return "From %s per project"
		case "services.pricing.monthly":
			return "From %s per month"
		case "contact.sent":
			return "Sent %s"
		}
		return key
	})
	p.Locales = []string{"en", "cs"}
	p.BaseURL = "https://seothon.dev"
	p.SiteName = "Seothon"
	p.Year = 2025
	p.SEO = seo.MetaTags("About | Seothon", "Who we are", "https://seothon.dev"+path, "", "")
	return p
}

func render(t *testing.T, n g.Node) *goquery.Document {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	require.NoError(t, err)
	return doc
}

func TestLayoutHead(t *testing.T) {
	t.Parallel()

	p := testPage("/about")
	p.Keywords = []string{"structured", "data"}
	p.AddJSONLD(context.Background(), seo.Organization(catalog.OrganizationInfo()))
	p.SetFooterJSONLD(context.Background(), seo.Footer("Seothon", 2025))
	p.Analytics = handlers.Analytics{GA4MeasurementID: "G-TEST1234"}

	doc := render(t, Layout(p, g.Text("hello")))
	require.Equal(t, "en", doc.Find("html").AttrOr("lang", ""))
	require.Equal(t, "About | Seothon", doc.Find("title").Text())
	require.Equal(t, "Who we are", doc.Find(`meta[name="description"]`).AttrOr("content", ""))
	require.Equal(t, "structured, data", doc.Find(`meta[name="keywords"]`).AttrOr("content", ""))
	require.Equal(t, "https://seothon.dev/about", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	require.Equal(t, "website", doc.Find(`meta[property="og:type"]`).AttrOr("content", ""))
	require.Equal(t, "summary_large_image", doc.Find(`meta[name="twitter:card"]`).AttrOr("content", ""))
	require.Zero(t, doc.Find(`meta[property="og:image"]`).Length())
	require.Equal(t, "https://seothon.dev/.well-known/ai.json", doc.Find(`meta[name="ai-discovery"]`).AttrOr("content", ""))
	require.Equal(t, 2, doc.Find(`link[rel="alternate"][hreflang]`).Length())
	require.Equal(t, 2, doc.Find(`script[type="application/ld+json"]`).Length())
	require.Contains(t, doc.Find(`footer script[type="application/ld+json"]`).Text(), "WPFooter")
	require.Contains(t, doc.Find("head").Text(), "G-TEST1234")

	require.Equal(t, "main", doc.Find("main").AttrOr("data-ai-section", ""))
	require.Equal(t, "hello", doc.Find("main").Text())
	require.Equal(t, "page", doc.Find(`.site-nav a[href="/about"]`).AttrOr("aria-current", ""))
	require.Equal(t, 2, doc.Find(".breadcrumbs li").Length())
}

func TestLayoutWithoutOptionalParts(t *testing.T) {
	t.Parallel()

	p := testPage("/")
	p.Locales = []string{"en"}
	doc := render(t, Layout(p))
	require.Zero(t, doc.Find(`meta[name="keywords"]`).Length())
	require.Zero(t, doc.Find(".breadcrumbs").Length())
	require.Zero(t, doc.Find(".lang-switch").Length())
	require.NotContains(t, doc.Find("head").Text(), "gtag")
}

func TestHomeMarkers(t *testing.T) {
	t.Parallel()

	doc := render(t, Home(testPage("/"), HomeView{Services: catalog.Services(), FAQs: catalog.FAQs()}))
	for _, id := range []string{"hero", "features", "services", "faq", "cta"} {
		require.Equal(t, 1, doc.Find(`[data-ai-section="`+id+`"]`).Length(), id)
	}
	require.Equal(t, 3, doc.Find(`[data-ai-content="faq"]`).Length())
	require.Equal(t, "What is AI SEO?", doc.Find(`[data-ai-content="faq"] h3`).First().Text())
}

func TestServicesShowPrices(t *testing.T) {
	t.Parallel()

	doc := render(t, Services(testPage("/services"), catalog.Services()))
	require.Equal(t, 3, doc.Find("article.service").Length())
	require.Equal(t, "From $2,000 per project", doc.Find("#ai-seo .price").Text())
	require.Equal(t, "From $1,500 per month", doc.Find("#analytics .price").Text())
	require.Equal(t, "/contact?service=web-development", doc.Find("#web-development a.button").AttrOr("href", ""))
}

func TestContactForm(t *testing.T) {
	t.Parallel()

	p := testPage("/contact")
	p.CSRFToken = "tok"
	doc := render(t, Contact(p, ContactView{
		Form:         contact.Form{Name: "Jane", Email: "bad", Service: "analytics", Message: "Hi <there>"},
		Errors:       contact.FieldErrors{"email": "contact.error.email"},
		Services:     catalog.Services(),
		Organization: catalog.Organization(),
	}))

	form := doc.Find("form#contact-form")
	require.Equal(t, "post", form.AttrOr("method", ""))
	require.Equal(t, "tok", form.Find(`input[name="csrf_token"]`).AttrOr("value", ""))
	require.Equal(t, "Jane", form.Find(`input[name="name"]`).AttrOr("value", ""))
	require.Equal(t, "true", form.Find(`input[name="email"]`).AttrOr("aria-invalid", ""))
	require.Equal(t, "contact.error.email", form.Find("#contact-email-error").Text())
	require.Zero(t, form.Find("#contact-name-error").Length())
	_, selected := form.Find(`option[value="analytics"]`).Attr("selected")
	require.True(t, selected)
	require.Equal(t, "Hi <there>", form.Find("textarea").Text())
	require.Equal(t, 5, form.Find("option").Length())
	require.Equal(t, "mailto:info@example.com", doc.Find("address a").First().AttrOr("href", ""))
	require.Zero(t, doc.Find(".notice").Length())

	sent := render(t, Contact(p, ContactView{Sent: "01ABC", Organization: catalog.Organization()}))
	require.Equal(t, "Sent 01ABC", sent.Find(".notice.success").Text())
}

func TestAIEndpointEscapesDocument(t *testing.T) {
	t.Parallel()

	doc := render(t, AIEndpoint(testPage("/ai-endpoint"), `{"a": "<b>"}`))
	require.Equal(t, `{"a": "<b>"}`, doc.Find("#ai-json").Text())
	require.Zero(t, doc.Find("#ai-json b").Length())
	require.Equal(t, "ai-json", doc.Find("button[data-copy-target]").AttrOr("data-copy-target", ""))
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	doc := render(t, NotFound(testPage("/missing")))
	require.Equal(t, "notfound.title", doc.Find("h1").Text())
	require.Equal(t, "/", doc.Find("a").AttrOr("href", ""))
}
