// Package mcpserver exposes the SEO helpers and the site's AI documents over the
// Model Context Protocol.
package mcpserver

import (
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"seothon.dev/web/internal/site"
)

const (
	serverName    = "seothon-seo"
	serverVersion = "1.0.0"
)

// Server wraps the MCP server with the site catalog.
type Server struct {
	catalog *site.Catalog
	clock   func() time.Time
	mcp     *server.MCPServer
}

type Option func(*Server)

// WithClock overrides the time stamped on generated documents.
func WithClock(clock func() time.Time) Option {
	return func(s *Server) { s.clock = clock }
}

// New registers tools and resources for catalog.
func New(catalog *site.Catalog, opts ...Option) *Server {
	s := &Server{catalog: catalog, clock: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.mcp = server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.registerTools()
	s.registerResources()
	return s
}

// MCP returns the underlying protocol server, e.g. for stdio transport.
func (s *Server) MCP() *server.MCPServer { return s.mcp }

// Handler serves the streamable HTTP transport.
func (s *Server) Handler() http.Handler {
	return server.NewStreamableHTTPServer(s.mcp)
}

// ServeStdio blocks serving the protocol on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}
