package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"seothon.dev/web/internal/config"
	"seothon.dev/web/internal/observability"
	"seothon.dev/web/internal/seo"
)

func TestAddJSONLDDropsInvalidBlocks(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.WarnLevel)
	ctx := observability.WithLogger(context.Background(), zap.New(core))

	p := NewPageData("en", "/about", nil)
	p.AddJSONLD(ctx,
		seo.WebPage(seo.PageInfo{URL: "https://seothon.dev/about", Name: "About"}),
		map[string]any{"@type": "Thing"},
	)
	require.Len(t, p.JSONLD, 1)
	require.Contains(t, p.JSONLD[0], `"@type": "WebPage"`)
	require.Equal(t, 1, logs.FilterMessage("dropping invalid structured data").Len())
	require.Equal(t, "Thing", logs.All()[0].ContextMap()["type"])

	p.SetFooterJSONLD(ctx, seo.Footer("Seothon", 2025))
	require.Contains(t, p.FooterJSONLD, "WPFooter")
}

func TestPageDataTranslate(t *testing.T) {
	t.Parallel()

	p := NewPageData("en", "/contact", func(key string) string {
		return map[string]string{"contact.sent": "Ref %s"}[key]
	})
	require.Equal(t, "Ref ABC", p.Tf("contact.sent", "ABC"))
	require.Len(t, p.Breadcrumbs, 2)

	var zero PageData
	require.Equal(t, "nav.home", zero.T("nav.home"))
}

func TestAnalyticsFromConfig(t *testing.T) {
	t.Parallel()

	require.True(t, AnalyticsFromConfig(config.AnalyticsConfig{GA4MeasurementID: "G-ABC123XYZ"}).Enabled())
	require.False(t, AnalyticsFromConfig(config.AnalyticsConfig{GA4MeasurementID: "G-1');alert(1)//"}).Enabled())
	require.False(t, AnalyticsFromConfig(config.AnalyticsConfig{}).Enabled())
}
