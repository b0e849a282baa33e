package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"seothon.dev/web/internal/seo"
)

var changeFrequencies = []string{
	string(seo.ChangeAlways), string(seo.ChangeHourly), string(seo.ChangeDaily), string(seo.ChangeWeekly),
	string(seo.ChangeMonthly), string(seo.ChangeYearly), string(seo.ChangeNever),
}

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("extract_keywords",
		mcp.WithDescription("Rank the most frequent meaningful words of a text, skipping stop words and words of three letters or fewer"),
		mcp.WithString("text", mcp.Required(), mcp.Description("Text to analyse")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of keywords, default 10")),
	), s.handleExtractKeywords)

	s.mcp.AddTool(mcp.NewTool("truncate_description",
		mcp.WithDescription("Strip markup and shorten text to a meta description at a word boundary"),
		mcp.WithString("content", mcp.Required(), mcp.Description("Text or HTML to shorten")),
		mcp.WithNumber("max_length", mcp.Description("Maximum length in characters before the ellipsis, default 160")),
		mcp.WithBoolean("hard_cut", mcp.Description("Cut mid-word when the text has no whitespace")),
	), s.handleTruncateDescription)

	s.mcp.AddTool(mcp.NewTool("validate_url",
		mcp.WithDescription("Check whether a string is an absolute URL"),
		mcp.WithString("url", mcp.Required(), mcp.Description("Candidate URL")),
	), s.handleValidateURL)

	s.mcp.AddTool(mcp.NewTool("build_sitemap_entry",
		mcp.WithDescription("Build a sitemap entry with defaults for missing fields"),
		mcp.WithString("url", mcp.Required(), mcp.Description("Absolute page URL")),
		mcp.WithString("last_modified", mcp.Description("Date as YYYY-MM-DD, default today")),
		mcp.WithString("change_frequency", mcp.Description("How often the page changes, default weekly"), mcp.Enum(changeFrequencies...)),
		mcp.WithNumber("priority", mcp.Description("Relative priority, default 0.5")),
	), s.handleBuildSitemapEntry)

	s.mcp.AddTool(mcp.NewTool("validate_structured_data",
		mcp.WithDescription("Check that a JSON-LD document carries @context and @type"),
		mcp.WithString("json", mcp.Required(), mcp.Description("JSON-LD document text")),
	), s.handleValidateStructuredData)
}

func (s *Server) handleExtractKeywords(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := request.GetString("text", "")
	if strings.TrimSpace(text) == "" {
		return mcp.NewToolResultError("text parameter required"), nil
	}
	limit := int(request.GetFloat("limit", seo.DefaultKeywordLimit))
	return mcp.NewToolResultText(seo.Serialize(seo.ExtractKeywords(text, limit))), nil
}

func (s *Server) handleTruncateDescription(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content := request.GetString("content", "")
	maxLength := int(request.GetFloat("max_length", seo.DefaultDescriptionLength))
	if maxLength <= 0 {
		return mcp.NewToolResultError("max_length must be positive"), nil
	}
	var opts []seo.TruncateOption
	if request.GetBool("hard_cut", false) {
		opts = append(opts, seo.WithHardCut())
	}
	return mcp.NewToolResultText(seo.TruncateDescription(content, maxLength, opts...)), nil
}

type urlCheck struct {
	URL   string `json:"url"`
	Valid bool   `json:"valid"`
}

func (s *Server) handleValidateURL(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	candidate := request.GetString("url", "")
	return mcp.NewToolResultText(seo.Serialize(urlCheck{URL: candidate, Valid: seo.IsValidURL(candidate)})), nil
}

func (s *Server) handleBuildSitemapEntry(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	u := request.GetString("url", "")
	if !seo.IsValidURL(u) {
		return mcp.NewToolResultError(fmt.Sprintf("invalid url %q", u)), nil
	}
	opts := []seo.SitemapOption{
		seo.WithClock(s.clock),
		seo.WithLastModified(request.GetString("last_modified", "")),
		seo.WithPriority(request.GetFloat("priority", seo.DefaultPriority)),
	}
	if freq := seo.ChangeFrequency(request.GetString("change_frequency", "")); freq != "" {
		if !freq.Valid() {
			return mcp.NewToolResultError(fmt.Sprintf("unknown change_frequency %q", freq)), nil
		}
		opts = append(opts, seo.WithChangeFrequency(freq))
	}
	return mcp.NewToolResultText(seo.Serialize(seo.NewSitemapEntry(u, opts...))), nil
}

type structuredDataCheck struct {
	Valid bool   `json:"valid"`
	Type  string `json:"type,omitempty"`
}

func (s *Server) handleValidateStructuredData(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := seo.Parse(request.GetString("json", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid JSON: %v", err)), nil
	}
	check := structuredDataCheck{Valid: seo.Validate(doc)}
	if m, ok := doc.(map[string]any); ok {
		check.Type, _ = m["@type"].(string)
	}
	return mcp.NewToolResultText(seo.Serialize(check)), nil
}
