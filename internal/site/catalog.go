// Package site holds the business facts published by the website: organization,
// services, FAQs and page inventory, plus their structured-data projections.
package site

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"seothon.dev/web/internal/i18n"
	"seothon.dev/web/internal/seo"
)

// Catalog is read-only after construction and safe for concurrent use.
type Catalog struct {
	BaseURL  string
	org      Organization
	services []Service
	pages    []Page
	faqs     []FAQ
}

// New returns the catalog for a site served from baseURL.
func New(baseURL string) *Catalog {
	base := strings.TrimRight(baseURL, "/")
	org := defaultOrganization
	org.URL = base
	if strings.HasPrefix(org.Logo, "/") {
		org.Logo = base + org.Logo
	}
	org.Languages = slices.Clone(defaultOrganization.Languages)
	return &Catalog{
		BaseURL:  base,
		org:      org,
		services: slices.Clone(defaultServices),
		pages:    slices.Clone(defaultPages),
		faqs:     slices.Clone(defaultFAQs),
	}
}

// URL resolves a site-relative path against the base URL. The root path maps to the bare origin.
func (c *Catalog) URL(path string) string {
	if path == "" || path == "/" {
		return c.BaseURL
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.BaseURL + path
}

func (c *Catalog) Organization() Organization { return c.org }

func (c *Catalog) Services() []Service { return slices.Clone(c.services) }

func (c *Catalog) Service(id string) (Service, bool) {
	for _, s := range c.services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// ServiceChoices are the accepted service ids for enquiries, "other" last.
func (c *Catalog) ServiceChoices() []string {
	out := make([]string, 0, len(c.services)+1)
	for _, s := range c.services {
		out = append(out, s.ID)
	}
	return append(out, OtherService)
}

func (c *Catalog) Pages() []Page { return slices.Clone(c.pages) }

// Page looks up a page by its site-relative URL, including the AI endpoint page.
func (c *Catalog) Page(path string) (Page, bool) {
	for _, p := range c.pages {
		if p.URL == path {
			return p, true
		}
	}
	if path == aiEndpointPage.URL {
		return aiEndpointPage, true
	}
	return Page{}, false
}

func (c *Catalog) FAQs() []FAQ { return slices.Clone(c.faqs) }

// AIData assembles the machine-readable business document stamped with now.
func (c *Catalog) AIData(now time.Time) AIData {
	org := c.org
	org.Languages = slices.Clone(c.org.Languages)
	return AIData{
		Version:      DataVersion,
		LastUpdated:  now.UTC().Format(time.RFC3339),
		Organization: org,
		Services:     c.Services(),
		Pages:        c.Pages(),
		FAQs:         c.FAQs(),
		Capabilities: defaultCapabilities,
		Metadata:     defaultMetadata,
	}
}

// OrganizationInfo projects the organization for structured data.
func (c *Catalog) OrganizationInfo() seo.OrganizationInfo {
	a := c.org.Address
	contact := c.ContactInfo()
	contact.AreaServed = ""
	return seo.OrganizationInfo{
		Name:        c.org.Name,
		URL:         c.org.URL,
		Logo:        c.org.Logo,
		Description: c.org.Description,
		Address: &seo.PostalAddress{
			Street:     a.Street,
			City:       a.City,
			PostalCode: a.PostalCode,
			Country:    a.CountryCode,
		},
		Contact: &contact,
		Social: &seo.SocialLinks{
			LinkedIn: c.org.Social.LinkedIn,
			Twitter:  c.org.Social.Twitter,
			Facebook: c.org.Social.Facebook,
		},
	}
}

// ContactInfo lists spoken languages by English name, e.g. Czech.
func (c *Catalog) ContactInfo() seo.ContactInfo {
	langs := make([]string, 0, len(c.org.Languages))
	for _, l := range c.org.Languages {
		langs = append(langs, i18n.LanguageName(l))
	}
	return seo.ContactInfo{
		Email:      c.org.Email,
		Phone:      c.org.Phone,
		Languages:  langs,
		AreaServed: c.org.Address.CountryCode,
	}
}

func (c *Catalog) SiteInfo(lang string) seo.SiteInfo {
	return seo.SiteInfo{
		URL:         c.BaseURL,
		Name:        c.org.Name,
		Description: c.org.Description,
		Language:    lang,
	}
}

// ServiceInfo projects a service with its starting price as an offer.
func (c *Catalog) ServiceInfo(s Service) seo.ServiceInfo {
	return seo.ServiceInfo{
		ID:          c.URL("/services") + "#" + s.ID,
		Name:        s.Name,
		Description: s.Description,
		Provider:    c.org.Name,
		ProviderURL: c.org.URL,
		AreaServed:  c.org.Address.Country,
		ServiceType: s.Category,
		Offer: &seo.Offer{
			Price:         strconv.FormatInt(s.Pricing.From, 10),
			PriceCurrency: s.Pricing.Currency,
			Description:   string(s.Pricing.Type),
		},
	}
}

func (c *Catalog) FAQEntries() []seo.FAQEntry {
	out := make([]seo.FAQEntry, 0, len(c.faqs))
	for _, f := range c.faqs {
		out = append(out, seo.FAQEntry{Question: f.Question, Answer: f.Answer})
	}
	return out
}

// SitemapEntries covers the catalog pages and the AI endpoint page, dated now.
func (c *Catalog) SitemapEntries(now time.Time) []seo.SitemapEntry {
	clock := seo.WithClock(func() time.Time { return now })
	pages := append(c.Pages(), aiEndpointPage)
	out := make([]seo.SitemapEntry, 0, len(pages))
	for _, p := range pages {
		out = append(out, seo.NewSitemapEntry(c.URL(p.URL),
			clock,
			seo.WithChangeFrequency(p.ChangeFrequency),
			seo.WithPriority(p.Priority),
		))
	}
	return out
}
