package seo

import (
	"encoding/json"
)

const schemaContext = "https://schema.org"

// DefaultServiceType is used when a ServiceInfo does not name one.
const DefaultServiceType = "Professional Service"

// PostalAddress is the organization's physical address.
type PostalAddress struct {
	Street     string
	City       string
	PostalCode string
	Country    string
}

// ContactInfo describes a customer-facing contact point.
type ContactInfo struct {
	Email      string
	Phone      string
	Languages  []string
	AreaServed string
}

// SocialLinks are flattened into sameAs in field order.
type SocialLinks struct {
	LinkedIn string
	Twitter  string
	Facebook string
}

type OrganizationInfo struct {
	Name        string
	URL         string
	Logo        string
	Description string
	Address     *PostalAddress
	Contact     *ContactInfo
	Social      *SocialLinks
}

type PageInfo struct {
	URL             string
	Name            string
	Description     string
	DatePublished   string
	DateModified    string
	OrganizationURL string
	// Type overrides the schema type (AboutPage, ContactPage, ...). Empty means WebPage.
	Type string
}

type ArticleInfo struct {
	Headline        string
	Description     string
	URL             string
	DatePublished   string
	DateModified    string
	AuthorName      string
	AuthorURL       string
	Image           string
	OrganizationURL string
}

// BreadcrumbEntry maps a display name to an absolute URL.
type BreadcrumbEntry struct {
	Name string
	URL  string
}

type FAQEntry struct {
	Question string
	Answer   string
}

// Offer is an optional price attached to a service.
type Offer struct {
	Price         string
	PriceCurrency string
	Description   string
}

type ServiceInfo struct {
	ID          string
	Name        string
	Description string
	Provider    string
	ProviderURL string
	AreaServed  string
	ServiceType string
	Offer       *Offer
}

// SiteInfo feeds the site-wide WebSite node.
type SiteInfo struct {
	URL         string
	Name        string
	Description string
	Language    string
	// SearchURL is the search endpoint prefix, e.g. https://example.com/search?q=
	SearchURL string
}

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

func node(typ string) map[string]any {
	return map[string]any{
		"@context": schemaContext,
		"@type":    typ,
	}
}

func ref(id string) map[string]any {
	return map[string]any{"@id": id}
}

func imageObject(url string) map[string]any {
	return map[string]any{"@type": "ImageObject", "url": url}
}

// Organization builds the schema.org Organization node identified by url + "/#organization".
func Organization(info OrganizationInfo) map[string]any {
	m := node("Organization")
	m["@id"] = info.URL + "/#organization"
	m["name"] = info.Name
	m["url"] = info.URL
	if info.Logo != "" {
		m["logo"] = imageObject(info.Logo)
	}
	if info.Description != "" {
		m["description"] = info.Description
	}
	if a := info.Address; a != nil {
		m["address"] = map[string]any{
			"@type":           "PostalAddress",
			"streetAddress":   a.Street,
			"addressLocality": a.City,
			"postalCode":      a.PostalCode,
			"addressCountry":  a.Country,
		}
	}
	if c := info.Contact; c != nil {
		m["contactPoint"] = contactPoint(*c)
	}
	if s := info.Social; s != nil {
		links := make([]string, 0, 3)
		for _, l := range []string{s.LinkedIn, s.Twitter, s.Facebook} {
			if l != "" {
				links = append(links, l)
			}
		}
		m["sameAs"] = links
	}
	return m
}

func contactPoint(c ContactInfo) map[string]any {
	m := map[string]any{
		"@type":       "ContactPoint",
		"email":       c.Email,
		"telephone":   c.Phone,
		"contactType": "customer service",
	}
	if len(c.Languages) > 0 {
		m["availableLanguage"] = c.Languages
	}
	if c.AreaServed != "" {
		m["areaServed"] = c.AreaServed
	}
	return m
}

// ContactPoint returns a standalone ContactPoint node.
func ContactPoint(info ContactInfo) map[string]any {
	m := contactPoint(info)
	m["@context"] = schemaContext
	return m
}

// WebSite returns the site node with an optional SearchAction.
func WebSite(info SiteInfo) map[string]any {
	m := node("WebSite")
	m["@id"] = info.URL + "/#website"
	m["name"] = info.Name
	m["url"] = info.URL
	m["publisher"] = ref(info.URL + "/#organization")
	if info.Description != "" {
		m["description"] = info.Description
	}
	if info.Language != "" {
		m["inLanguage"] = info.Language
	}
	if info.SearchURL != "" {
		m["potentialAction"] = map[string]any{
			"@type":       "SearchAction",
			"target":      info.SearchURL + "{search_term_string}",
			"query-input": "required name=search_term_string",
		}
	}
	return m
}

// WebPage links a page to the site and organization nodes.
func WebPage(info PageInfo) map[string]any {
	typ := info.Type
	if typ == "" {
		typ = "WebPage"
	}
	m := node(typ)
	m["@id"] = info.URL + "/#webpage"
	m["url"] = info.URL
	m["name"] = info.Name
	m["description"] = info.Description
	m["isPartOf"] = ref(info.OrganizationURL + "/#website")
	m["about"] = ref(info.OrganizationURL + "/#organization")
	if info.DatePublished != "" {
		m["datePublished"] = info.DatePublished
	}
	if info.DateModified != "" {
		m["dateModified"] = info.DateModified
	}
	return m
}

// Article returns an Article node published by the organization.
func Article(info ArticleInfo) map[string]any {
	m := node("Article")
	m["headline"] = info.Headline
	m["description"] = info.Description
	m["url"] = info.URL
	m["datePublished"] = info.DatePublished
	m["dateModified"] = info.DateModified
	author := map[string]any{"@type": "Person", "name": info.AuthorName}
	if info.AuthorURL != "" {
		author["url"] = info.AuthorURL
	}
	m["author"] = author
	m["publisher"] = ref(info.OrganizationURL + "/#organization")
	if info.Image != "" {
		m["image"] = imageObject(info.Image)
	}
	return m
}

// BreadcrumbList numbers entries from 1 in the given order.
func BreadcrumbList(items []BreadcrumbEntry) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.URL,
		})
	}
	m := node("BreadcrumbList")
	m["itemListElement"] = el
	return m
}

func FAQPage(faqs []FAQEntry) map[string]any {
	qs := make([]map[string]any, 0, len(faqs))
	for _, f := range faqs {
		qs = append(qs, map[string]any{
			"@type": "Question",
			"name":  f.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  f.Answer,
			},
		})
	}
	m := node("FAQPage")
	m["mainEntity"] = qs
	return m
}

// Service describes an offering provided by the organization.
func Service(info ServiceInfo) map[string]any {
	st := info.ServiceType
	if st == "" {
		st = DefaultServiceType
	}
	m := node("Service")
	if info.ID != "" {
		m["@id"] = info.ID
	}
	m["name"] = info.Name
	m["description"] = info.Description
	m["provider"] = map[string]any{
		"@type": "Organization",
		"name":  info.Provider,
		"url":   info.ProviderURL,
	}
	m["serviceType"] = st
	if info.AreaServed != "" {
		m["areaServed"] = map[string]any{"@type": "Country", "name": info.AreaServed}
	}
	if o := info.Offer; o != nil {
		offer := map[string]any{
			"@type":         "Offer",
			"price":         o.Price,
			"priceCurrency": o.PriceCurrency,
		}
		if o.Description != "" {
			offer["description"] = o.Description
		}
		m["offers"] = offer
	}
	return m
}

// Footer returns a WPFooter node crediting holder for year.
func Footer(holder string, year int) map[string]any {
	m := node("WPFooter")
	m["copyrightYear"] = year
	m["copyrightHolder"] = map[string]any{"@type": "Organization", "name": holder}
	return m
}
