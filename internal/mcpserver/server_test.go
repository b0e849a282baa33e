package mcpserver

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"seothon.dev/web/internal/site"
)

var fixedNow = time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)

func newTestServer() *Server {
	return New(site.New("https://seothon.dev"), WithClock(func() time.Time { return fixedNow }))
}

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text, res.IsError
}

func TestExtractKeywordsTool(t *testing.T) {
	t.Parallel()

	s := newTestServer()
	out, isErr := callTool(t, s.handleExtractKeywords, map[string]any{
		"text":  "Optimize websites. Optimize content. Websites matter for search.",
		"limit": float64(2),
	})
	require.False(t, isErr)
	var got []string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, []string{"optimize", "websites"}, got)

	_, isErr = callTool(t, s.handleExtractKeywords, map[string]any{"text": "  "})
	require.True(t, isErr)
}

func TestTruncateDescriptionTool(t *testing.T) {
	t.Parallel()

	s := newTestServer()
	out, isErr := callTool(t, s.handleTruncateDescription, map[string]any{
		"content":    "<p>Hello wonderful world</p>",
		"max_length": float64(16),
	})
	require.False(t, isErr)
	require.Equal(t, "Hello wonderful...", out)

	out, _ = callTool(t, s.handleTruncateDescription, map[string]any{
		"content":    "abcdefghijklmnopqrstuvwxyz",
		"max_length": float64(5),
		"hard_cut":   true,
	})
	require.Equal(t, "abcde...", out)

	_, isErr = callTool(t, s.handleTruncateDescription, map[string]any{"content": "x", "max_length": float64(0)})
	require.True(t, isErr)
}

func TestValidateURLTool(t *testing.T) {
	t.Parallel()

	s := newTestServer()
	out, _ := callTool(t, s.handleValidateURL, map[string]any{"url": "https://example.com/a"})
	require.JSONEq(t, `{"url":"https://example.com/a","valid":true}`, out)
	out, _ = callTool(t, s.handleValidateURL, map[string]any{"url": "not a url"})
	require.JSONEq(t, `{"url":"not a url","valid":false}`, out)
}

func TestBuildSitemapEntryTool(t *testing.T) {
	t.Parallel()

	s := newTestServer()
	out, isErr := callTool(t, s.handleBuildSitemapEntry, map[string]any{"url": "https://seothon.dev/about"})
	require.False(t, isErr)
	require.JSONEq(t, `{"url":"https://seothon.dev/about","lastModified":"2025-06-01","changeFrequency":"weekly","priority":0.5}`, out)

	out, isErr = callTool(t, s.handleBuildSitemapEntry, map[string]any{
		"url":              "https://seothon.dev/",
		"last_modified":    "2025-01-01",
		"change_frequency": "daily",
		"priority":         float64(0),
	})
	require.False(t, isErr)
	require.JSONEq(t, `{"url":"https://seothon.dev/","lastModified":"2025-01-01","changeFrequency":"daily","priority":0}`, out)

	_, isErr = callTool(t, s.handleBuildSitemapEntry, map[string]any{"url": "https://seothon.dev/", "change_frequency": "sometimes"})
	require.True(t, isErr)
	_, isErr = callTool(t, s.handleBuildSitemapEntry, map[string]any{"url": "relative/path"})
	require.True(t, isErr)
}

func TestValidateStructuredDataTool(t *testing.T) {
	t.Parallel()

	s := newTestServer()
	out, isErr := callTool(t, s.handleValidateStructuredData, map[string]any{
		"json": `{"@context":"https://schema.org","@type":"Organization","name":"X"}`,
	})
	require.False(t, isErr)
	require.JSONEq(t, `{"valid":true,"type":"Organization"}`, out)

	out, _ = callTool(t, s.handleValidateStructuredData, map[string]any{"json": `{"@type":"Thing"}`})
	require.JSONEq(t, `{"valid":false,"type":"Thing"}`, out)

	_, isErr = callTool(t, s.handleValidateStructuredData, map[string]any{"json": `{`})
	require.True(t, isErr)
}

func TestResources(t *testing.T) {
	t.Parallel()

	s := newTestServer()
	contents, err := s.handleAIData(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)
	text := contents[0].(mcp.TextResourceContents)
	require.Equal(t, AIDataURI, text.URI)

	var data site.AIData
	require.NoError(t, json.Unmarshal([]byte(text.Text), &data))
	require.Equal(t, "2025-06-01T08:30:00Z", data.LastUpdated)
	require.Equal(t, "Seothon", data.Organization.Name)
	require.Len(t, data.Services, 3)

	contents, err = s.handleManifest(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	var manifest site.Manifest
	require.NoError(t, json.Unmarshal([]byte(contents[0].(mcp.TextResourceContents).Text), &manifest))
	require.Equal(t, "prefill_contact_form", manifest.Actions[0].ID)
	require.Equal(t, "https://seothon.dev/contact", manifest.Actions[0].Endpoint)
}

func TestHandlerIsMountable(t *testing.T) {
	t.Parallel()

	require.NotNil(t, newTestServer().Handler())
}
