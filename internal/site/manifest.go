package site

// EmailPattern is the address shape advertised to agents and enforced on submission.
const EmailPattern = `^[^@]+@[^@]+\.[^@]+$`

// OtherService is the catch-all service id accepted by the contact form.
const OtherService = "other"

type Manifest struct {
	Version string   `json:"version"`
	Actions []Action `json:"actions"`
}

// Action is a web intent an agent can hand to the user.
type Action struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Kind        string  `json:"kind"`
	Method      string  `json:"method"`
	Endpoint    string  `json:"endpoint"`
	Prefill     Prefill `json:"prefill"`
	Params      []Param `json:"params"`
}

type Prefill struct {
	Via     string            `json:"via"`
	Mapping map[string]string `json:"mapping"`
}

type Param struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Required    bool     `json:"required"`
	Pattern     string   `json:"pattern,omitempty"`
	Enum        []string `json:"enum,omitempty"`
}

// Discovery is served at /.well-known/ai.json.
type Discovery struct {
	Version     string             `json:"version"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	URL         string             `json:"url"`
	ContentType string             `json:"contentType"`
	Languages   []string           `json:"languages"`
	Endpoints   DiscoveryEndpoints `json:"endpoints"`
}

type DiscoveryEndpoints struct {
	Data       string `json:"data"`
	Manifest   string `json:"manifest"`
	Sitemap    string `json:"sitemap"`
	SitemapXML string `json:"sitemapXml"`
	MCP        string `json:"mcp,omitempty"`
}

// Manifest lists the web intents the site supports.
func (c *Catalog) Manifest() Manifest {
	return Manifest{
		Version: DataVersion,
		Actions: []Action{{
			ID:          "prefill_contact_form",
			Name:        "Prefill Contact Form",
			Description: "Generate a pre-filled contact form URL for the user",
			Kind:        "web-intent",
			Method:      "GET",
			Endpoint:    c.URL("/contact"),
			Prefill: Prefill{
				Via: "query",
				Mapping: map[string]string{
					"name":    "name",
					"email":   "email",
					"service": "service",
					"message": "message",
				},
			},
			Params: []Param{
				{Name: "name", Type: "string", Description: "User's full name", Required: true},
				{Name: "email", Type: "string", Description: "User's email address", Required: true, Pattern: EmailPattern},
				{Name: "service", Type: "string", Description: "Service of interest", Enum: c.ServiceChoices()},
				{Name: "message", Type: "string", Description: "Message or inquiry"},
			},
		}},
	}
}

// Discovery points AI agents at the machine-readable surfaces. MCP is listed only when served.
func (c *Catalog) Discovery(mcpEnabled bool) Discovery {
	d := Discovery{
		Version:     DataVersion,
		Name:        c.org.Name,
		Description: c.org.Description,
		URL:         c.BaseURL,
		ContentType: "business-website",
		Languages:   append([]string(nil), c.org.Languages...),
		Endpoints: DiscoveryEndpoints{
			Data:       c.URL("/api/ai/data"),
			Manifest:   c.URL("/api/ai/manifest"),
			Sitemap:    c.URL("/sitemap.json"),
			SitemapXML: c.URL("/sitemap.xml"),
		},
	}
	if mcpEnabled {
		d.Endpoints.MCP = c.URL("/mcp")
	}
	return d
}
