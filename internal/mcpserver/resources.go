package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"seothon.dev/web/internal/seo"
)

const (
	AIDataURI   = "seothon://ai-data"
	ManifestURI = "seothon://manifest"
)

func (s *Server) registerResources() {
	s.mcp.AddResource(mcp.NewResource(AIDataURI,
		"AI business data",
		mcp.WithMIMEType("application/json"),
		mcp.WithResourceDescription("Organization, services, pages and FAQs as served at /api/ai/data"),
	), s.handleAIData)

	s.mcp.AddResource(mcp.NewResource(ManifestURI,
		"Actions manifest",
		mcp.WithMIMEType("application/json"),
		mcp.WithResourceDescription("Web intents an agent can offer, such as a prefilled contact form"),
	), s.handleManifest)
}

func (s *Server) handleAIData(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      AIDataURI,
			MIMEType: "application/json",
			Text:     seo.Serialize(s.catalog.AIData(s.clock())),
		},
	}, nil
}

func (s *Server) handleManifest(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      ManifestURI,
			MIMEType: "application/json",
			Text:     seo.Serialize(s.catalog.Manifest()),
		},
	}, nil
}
