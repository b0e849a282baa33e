package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"seothon.dev/web/internal/nav"
	"seothon.dev/web/internal/observability"
	"seothon.dev/web/internal/seo"
)

// PageData is the view model shared by every page rendered through the layout.
type PageData struct {
	Lang     string
	Locales  []string
	Path     string
	BaseURL  string
	SiteName string
	Year     int

	SEO      seo.MetaTagSet
	Keywords []string
	// JSONLD holds serialized blocks that passed validation, site-wide blocks first.
	JSONLD       []string
	FooterJSONLD string

	Analytics   Analytics
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb
	CSRFToken   string

	translate func(key string) string
}

// NewPageData prepares the chrome for path in lang. translate resolves message keys.
func NewPageData(lang, path string, translate func(key string) string) PageData {
	if translate == nil {
		translate = func(key string) string { return key }
	}
	return PageData{
		Lang:        lang,
		Path:        path,
		Nav:         nav.Build(path),
		Breadcrumbs: nav.Breadcrumbs(path),
		translate:   translate,
	}
}

// T translates key.
func (p PageData) T(key string) string {
	if p.translate == nil {
		return key
	}
	return p.translate(key)
}

// Tf translates key and formats it with args.
func (p PageData) Tf(key string, args ...any) string {
	return fmt.Sprintf(p.T(key), args...)
}

// Translator exposes the key resolver, e.g. for breadcrumb labels.
func (p PageData) Translator() func(string) string { return p.T }

// AddJSONLD serializes blocks that carry @context and @type. Invalid blocks are
// dropped and logged so a broken builder never ships malformed markup.
func (p *PageData) AddJSONLD(ctx context.Context, blocks ...map[string]any) {
	for _, block := range blocks {
		if text, ok := structured(ctx, p.Path, block); ok {
			p.JSONLD = append(p.JSONLD, text)
		}
	}
}

// SetFooterJSONLD validates and stores the footer block.
func (p *PageData) SetFooterJSONLD(ctx context.Context, block map[string]any) {
	if text, ok := structured(ctx, p.Path, block); ok {
		p.FooterJSONLD = text
	}
}

func structured(ctx context.Context, path string, block map[string]any) (string, bool) {
	if !seo.Validate(block) {
		typ, _ := block["@type"].(string)
		observability.FromContext(ctx).Warn("dropping invalid structured data",
			zap.String("path", path),
			zap.String("type", typ),
		)
		return "", false
	}
	text := seo.Serialize(block)
	if text == "" {
		observability.FromContext(ctx).Warn("structured data did not serialize", zap.String("path", path))
		return "", false
	}
	return text, true
}
