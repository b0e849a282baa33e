package seo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrganizationMinimal(t *testing.T) {
	t.Parallel()

	got := Organization(OrganizationInfo{Name: "Acme", URL: "https://acme.test"})

	require.Equal(t, map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"@id":      "https://acme.test/#organization",
		"name":     "Acme",
		"url":      "https://acme.test",
	}, got)
	for _, key := range []string{"logo", "description", "address", "contactPoint", "sameAs"} {
		require.NotContains(t, got, key)
	}
}

func TestOrganizationFull(t *testing.T) {
	t.Parallel()

	got := Organization(OrganizationInfo{
		Name:        "Acme",
		URL:         "https://acme.test",
		Logo:        "https://acme.test/logo.png",
		Description: "Widgets",
		Address:     &PostalAddress{Street: "Main 1", City: "Prague", PostalCode: "11000", Country: "CZ"},
		Contact:     &ContactInfo{Email: "hi@acme.test", Phone: "+420 123"},
		Social:      &SocialLinks{LinkedIn: "https://linkedin.com/acme", Facebook: "https://facebook.com/acme"},
	})

	require.Equal(t, map[string]any{"@type": "ImageObject", "url": "https://acme.test/logo.png"}, got["logo"])
	require.Equal(t, "Widgets", got["description"])
	require.Equal(t, map[string]any{
		"@type":           "PostalAddress",
		"streetAddress":   "Main 1",
		"addressLocality": "Prague",
		"postalCode":      "11000",
		"addressCountry":  "CZ",
	}, got["address"])
	require.Equal(t, map[string]any{
		"@type":       "ContactPoint",
		"email":       "hi@acme.test",
		"telephone":   "+420 123",
		"contactType": "customer service",
	}, got["contactPoint"])
	require.Equal(t, []string{"https://linkedin.com/acme", "https://facebook.com/acme"}, got["sameAs"])
}

func TestOrganizationEmptySocialKeepsList(t *testing.T) {
	t.Parallel()

	got := Organization(OrganizationInfo{Name: "Acme", URL: "https://acme.test", Social: &SocialLinks{}})
	require.Equal(t, []string{}, got["sameAs"])
	require.Contains(t, Serialize(got), `"sameAs": []`)
}

func TestWebPage(t *testing.T) {
	t.Parallel()

	got := WebPage(PageInfo{
		URL:             "https://x.test/about",
		Name:            "About",
		Description:     "d",
		OrganizationURL: "https://x.test",
	})

	require.Equal(t, "WebPage", got["@type"])
	require.Equal(t, "https://x.test/about/#webpage", got["@id"])
	require.Equal(t, map[string]any{"@id": "https://x.test/#website"}, got["isPartOf"])
	require.Equal(t, map[string]any{"@id": "https://x.test/#organization"}, got["about"])
	require.NotContains(t, got, "datePublished")
	require.NotContains(t, got, "dateModified")

	dated := WebPage(PageInfo{URL: "u", OrganizationURL: "o", Type: "AboutPage", DatePublished: "2024-01-01", DateModified: "2024-02-01"})
	require.Equal(t, "AboutPage", dated["@type"])
	require.Equal(t, "2024-01-01", dated["datePublished"])
	require.Equal(t, "2024-02-01", dated["dateModified"])
}

func TestArticle(t *testing.T) {
	t.Parallel()

	got := Article(ArticleInfo{
		Headline:        "H",
		Description:     "D",
		URL:             "https://x.test/a",
		DatePublished:   "2024-01-01T00:00:00Z",
		DateModified:    "2024-01-02T00:00:00Z",
		AuthorName:      "Jan",
		OrganizationURL: "https://x.test",
	})

	require.Equal(t, map[string]any{"@type": "Person", "name": "Jan"}, got["author"])
	require.Equal(t, map[string]any{"@id": "https://x.test/#organization"}, got["publisher"])
	require.NotContains(t, got, "image")

	withExtras := Article(ArticleInfo{AuthorName: "Jan", AuthorURL: "https://jan.test", Image: "https://x.test/i.png"})
	require.Equal(t, "https://jan.test", withExtras["author"].(map[string]any)["url"])
	require.Equal(t, map[string]any{"@type": "ImageObject", "url": "https://x.test/i.png"}, withExtras["image"])
}

func TestBreadcrumbList(t *testing.T) {
	t.Parallel()

	got := BreadcrumbList([]BreadcrumbEntry{
		{Name: "Home", URL: "https://x.test"},
		{Name: "Services", URL: "https://x.test/services"},
		{Name: "Home", URL: "https://x.test"},
	})
	items := got["itemListElement"].([]map[string]any)
	require.Len(t, items, 3)
	for i, it := range items {
		require.Equal(t, i+1, it["position"])
		require.Equal(t, "ListItem", it["@type"])
	}
	require.Equal(t, "Services", items[1]["name"])
	require.Equal(t, "https://x.test/services", items[1]["item"])

	empty := BreadcrumbList(nil)
	require.Empty(t, empty["itemListElement"])
	require.True(t, Validate(empty))
}

func TestFAQPage(t *testing.T) {
	t.Parallel()

	got := FAQPage([]FAQEntry{{Question: "Q1?", Answer: "A1"}, {Question: "Q2?", Answer: "A2"}})
	qs := got["mainEntity"].([]map[string]any)
	require.Len(t, qs, 2)
	require.Equal(t, "Q1?", qs[0]["name"])
	require.Equal(t, map[string]any{"@type": "Answer", "text": "A2"}, qs[1]["acceptedAnswer"])
}

func TestService(t *testing.T) {
	t.Parallel()

	got := Service(ServiceInfo{Name: "SEO", Description: "d", Provider: "Acme", ProviderURL: "https://acme.test"})
	require.Equal(t, DefaultServiceType, got["serviceType"])
	require.Equal(t, map[string]any{"@type": "Organization", "name": "Acme", "url": "https://acme.test"}, got["provider"])
	require.NotContains(t, got, "areaServed")
	require.NotContains(t, got, "offers")
	require.NotContains(t, got, "@id")

	full := Service(ServiceInfo{
		ID:          "https://acme.test/services#seo",
		ServiceType: "Consulting",
		AreaServed:  "Czech Republic",
		Offer:       &Offer{Price: "2000", PriceCurrency: "USD"},
	})
	require.Equal(t, "Consulting", full["serviceType"])
	require.Equal(t, map[string]any{"@type": "Country", "name": "Czech Republic"}, full["areaServed"])
	require.Equal(t, "USD", full["offers"].(map[string]any)["priceCurrency"])
}

func TestWebSiteAndFooter(t *testing.T) {
	t.Parallel()

	site := WebSite(SiteInfo{URL: "https://x.test", Name: "X", Language: "cs"})
	require.Equal(t, "https://x.test/#website", site["@id"])
	require.Equal(t, map[string]any{"@id": "https://x.test/#organization"}, site["publisher"])
	require.NotContains(t, site, "potentialAction")

	search := WebSite(SiteInfo{URL: "https://x.test", SearchURL: "https://x.test/search?q="})
	action := search["potentialAction"].(map[string]any)
	require.Equal(t, "https://x.test/search?q={search_term_string}", action["target"])

	footer := Footer("Acme", 2025)
	require.True(t, Validate(footer))
	require.Equal(t, 2025, footer["copyrightYear"])
}

func TestContactPointStandalone(t *testing.T) {
	t.Parallel()

	got := ContactPoint(ContactInfo{Email: "e", Phone: "p", Languages: []string{"Czech", "English"}, AreaServed: "CZ"})
	require.True(t, Validate(got))
	require.Equal(t, []string{"Czech", "English"}, got["availableLanguage"])
	require.Equal(t, "CZ", got["areaServed"])
}

func TestBuildersProduceValidData(t *testing.T) {
	t.Parallel()

	nodes := []map[string]any{
		Organization(OrganizationInfo{Name: "n", URL: "https://x.test"}),
		WebPage(PageInfo{URL: "u"}),
		Article(ArticleInfo{}),
		BreadcrumbList(nil),
		FAQPage(nil),
		Service(ServiceInfo{}),
		WebSite(SiteInfo{}),
	}
	for _, n := range nodes {
		require.True(t, Validate(n), "%v", n["@type"])
		for k, v := range n {
			require.NotNil(t, v, "key %s", k)
		}
	}
}

func TestMetaTags(t *testing.T) {
	t.Parallel()

	got := MetaTags("T", "D", "https://x.test/p", "", "")
	require.Equal(t, "https://x.test/p", got.Canonical)
	require.Equal(t, "website", got.OpenGraph.Type)
	require.Equal(t, "summary_large_image", got.Twitter.Card)
	require.Equal(t, "T", got.Twitter.Title)
	require.Empty(t, got.OpenGraph.Image)
	require.NotContains(t, JSON(got), "image")

	article := MetaTags("T", "D", "u", "https://x.test/i.png", "article")
	require.Equal(t, "article", article.OpenGraph.Type)
	require.Equal(t, "https://x.test/i.png", article.Twitter.Image)
}
