package site

import "seothon.dev/web/internal/seo"

// DataVersion is the schema version of the AI data and manifest documents.
const DataVersion = "1.0"

type Address struct {
	Street      string `json:"street"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
}

type Social struct {
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Facebook string `json:"facebook,omitempty"`
}

type Organization struct {
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Logo        string   `json:"logo,omitempty"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Address     Address  `json:"address"`
	Social      Social   `json:"social"`
	Languages   []string `json:"languages"`
}

type PricingType string

const (
	PricingProject PricingType = "project"
	PricingMonthly PricingType = "monthly"
)

type Pricing struct {
	From     int64       `json:"from"`
	Currency string      `json:"currency"`
	Type     PricingType `json:"type"`
}

type Service struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Features    []string `json:"features"`
	Pricing     Pricing  `json:"pricing"`
}

// Page is a top-level page as advertised to AI readers. Sitemap hints are not published.
type Page struct {
	URL             string              `json:"url"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	Type            string              `json:"type"`
	ChangeFrequency seo.ChangeFrequency `json:"-"`
	Priority        float64             `json:"-"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Capabilities struct {
	StructuredData      bool `json:"structured_data"`
	ServerSideRendering bool `json:"server_side_rendering"`
	SemanticHTML        bool `json:"semantic_html"`
	AIAccessible        bool `json:"ai_accessible"`
	MobileResponsive    bool `json:"mobile_responsive"`
	WCAGCompliant       bool `json:"wcag_compliant"`
}

type Metadata struct {
	Generator   string `json:"generator"`
	Framework   string `json:"framework"`
	Rendering   string `json:"rendering"`
	AIOptimized bool   `json:"ai_optimized"`
}

// AIData is the document served at /api/ai/data.
type AIData struct {
	Version      string       `json:"version"`
	LastUpdated  string       `json:"lastUpdated"`
	Organization Organization `json:"organization"`
	Services     []Service    `json:"services"`
	Pages        []Page       `json:"pages"`
	FAQs         []FAQ        `json:"faqs"`
	Capabilities Capabilities `json:"capabilities"`
	Metadata     Metadata     `json:"metadata"`
}

var defaultOrganization = Organization{
	Name:        "Seothon",
	Description: "AI-optimized business providing innovative solutions",
	Logo:        "/assets/logo.png",
	Email:       "info@example.com",
	Phone:       "+420-XXX-XXX-XXX",
	Address: Address{
		Street:      "Example Street 123",
		City:        "Prague",
		PostalCode:  "110 00",
		Country:     "Czech Republic",
		CountryCode: "CZ",
	},
	Social: Social{
		LinkedIn: "https://linkedin.com/company/example",
		Twitter:  "https://twitter.com/example",
	},
	Languages: []string{"cs", "en"},
}

var defaultServices = []Service{
	{
		ID:          "ai-seo",
		Name:        "AI SEO Optimization",
		Description: "Optimize your website for AI-powered search engines and assistants",
		Category:    "SEO",
		Features: []string{
			"Structured data implementation",
			"Semantic HTML optimization",
			"AI-readable content architecture",
			"Schema.org markup",
		},
		Pricing: Pricing{From: 2000, Currency: "USD", Type: PricingProject},
	},
	{
		ID:          "web-development",
		Name:        "Modern Web Development",
		Description: "Build fast, accessible, and AI-optimized web applications",
		Category:    "Development",
		Features: []string{
			"Server-side rendering",
			"Component-based page architecture",
			"Performance optimization",
			"Mobile-first responsive design",
		},
		Pricing: Pricing{From: 5000, Currency: "USD", Type: PricingProject},
	},
	{
		ID:          "analytics",
		Name:        "AI Analytics & Insights",
		Description: "Track and analyze how AI systems interact with your content",
		Category:    "Analytics",
		Features: []string{
			"AI bot traffic analysis",
			"Content effectiveness metrics",
			"Structured data validation",
			"Competitive analysis",
		},
		Pricing: Pricing{From: 1500, Currency: "USD", Type: PricingMonthly},
	},
}

var defaultPages = []Page{
	{
		URL:             "/",
		Title:           "Home",
		Description:     "AI-optimized business website with server-side rendering",
		Type:            "WebPage",
		ChangeFrequency: seo.ChangeWeekly,
		Priority:        1.0,
	},
	{
		URL:             "/about",
		Title:           "About Us",
		Description:     "Learn about our mission to create AI-optimized web solutions",
		Type:            "AboutPage",
		ChangeFrequency: seo.ChangeMonthly,
		Priority:        0.8,
	},
	{
		URL:             "/services",
		Title:           "Services",
		Description:     "Explore our AI SEO optimization and web development services",
		Type:            "CollectionPage",
		ChangeFrequency: seo.ChangeWeekly,
		Priority:        0.9,
	},
	{
		URL:             "/contact",
		Title:           "Contact",
		Description:     "Get in touch with us for AI SEO optimization services",
		Type:            "ContactPage",
		ChangeFrequency: seo.ChangeMonthly,
		Priority:        0.7,
	},
}

// aiEndpointPage is listed in the sitemap but not in the AI data page inventory.
var aiEndpointPage = Page{
	URL:             "/ai-endpoint",
	Title:           "AI Data Endpoint",
	Description:     "Structured business data for AI assistants and crawlers",
	Type:            "WebPage",
	ChangeFrequency: seo.ChangeDaily,
	Priority:        0.6,
}

var defaultFAQs = []FAQ{
	{
		Question: "What is AI SEO?",
		Answer:   "AI SEO is the practice of optimizing websites to be easily understood and indexed by AI-powered search engines and assistants like ChatGPT, Claude, and Perplexity.",
	},
	{
		Question: "Why is server-side rendering important for AI?",
		Answer:   "Server-side rendering ensures that AI bots receive complete HTML content immediately, without needing to execute JavaScript. This makes your content more accessible and easier for AI systems to understand.",
	},
	{
		Question: "What is structured data?",
		Answer:   "Structured data is a standardized format (like JSON-LD with Schema.org vocabulary) that helps AI systems understand the context and relationships in your content.",
	},
}

var defaultCapabilities = Capabilities{
	StructuredData:      true,
	ServerSideRendering: true,
	SemanticHTML:        true,
	AIAccessible:        true,
	MobileResponsive:    true,
	WCAGCompliant:       true,
}

var defaultMetadata = Metadata{
	Generator:   "Go net/http",
	Framework:   "chi + gomponents",
	Rendering:   "Server-Side Rendering (SSR)",
	AIOptimized: true,
}
