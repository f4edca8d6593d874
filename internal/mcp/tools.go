// ABOUTME: MCP tool definitions and handlers for feed parsing
// ABOUTME: Provides tools to parse a feed, read one item as Markdown, and discover a site's feed

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/feedparse/internal/content"
	"github.com/harper/feedparse/internal/models"
	"github.com/harper/feedparse/internal/parse"
)

// Errors returned for bad tool input
var (
	ErrNoSource      = errors.New("one of url or xml is required")
	ErrTwoSources    = errors.New("url and xml are mutually exclusive")
	ErrIndexOutRange = errors.New("item index out of range")
)

// Type definitions for input/output structures

type ParseFeedInput struct {
	URL           *string `json:"url,omitempty"`
	XML           *string `json:"xml,omitempty"`
	RemoveStyles  *bool   `json:"remove_styles,omitempty"`
	RemoveScripts *bool   `json:"remove_scripts,omitempty"`
}

type GetItemInput struct {
	URL   *string `json:"url,omitempty"`
	XML   *string `json:"xml,omitempty"`
	Index int     `json:"index"`
}

type GetItemOutput struct {
	Index       int             `json:"index"`
	Count       int             `json:"count"`
	FeedTitle   string          `json:"feed_title,omitempty"`
	// Fingerprint stays the same across fetches of the same item.
	Fingerprint string          `json:"fingerprint"`
	Item        models.FeedItem `json:"item"`
	Markdown    string          `json:"markdown"`
}

type DiscoverFeedInput struct {
	URL string `json:"url"`
}

type DiscoverFeedOutput struct {
	URL       string          `json:"url"`
	Title     string          `json:"title,omitempty"`
	Type      models.FeedType `json:"type"`
	ItemCount int             `json:"item_count"`
}

var sourceProperties = map[string]interface{}{
	"url": map[string]interface{}{
		"type":        "string",
		"description": "Feed URL to fetch. Example: 'https://example.com/feed.xml'",
	},
	"xml": map[string]interface{}{
		"type":        "string",
		"description": "Raw feed document, used instead of url",
	},
}

func (s *Server) registerTools() {
	s.registerParseFeedTool()
	s.registerGetItemTool()
	s.registerDiscoverFeedTool()
}

func (s *Server) registerParseFeedTool() {
	properties := map[string]interface{}{
		"remove_styles": map[string]interface{}{
			"type":        "boolean",
			"description": "Strip style attributes and <style> elements from xhtml content (default from config)",
		},
		"remove_scripts": map[string]interface{}{
			"type":        "boolean",
			"description": "Strip on* handler attributes and <script> elements from xhtml content (default from config)",
		},
	}
	for k, v := range sourceProperties {
		properties[k] = v
	}

	tool := mcp.Tool{
		Name:        "parse_feed",
		Description: "Parse an RSS 2.0, ATOM or RDF feed into one normalized JSON record. Provide either a url to fetch or the raw xml. Dates are normalized, xhtml content is cleaned, and each item gets an image sniffed from its content when none is declared.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: properties,
		},
	}
	s.mcpServer.AddTool(tool, s.handleParseFeed)
}

func (s *Server) registerGetItemTool() {
	properties := map[string]interface{}{
		"index": map[string]interface{}{
			"type":        "integer",
			"description": "Zero-based item position in document order",
		},
	}
	for k, v := range sourceProperties {
		properties[k] = v
	}

	tool := mcp.Tool{
		Name:        "get_item",
		Description: "Return one item of a feed with its content rendered as Markdown. Provide either a url or the raw xml, plus the zero-based index of the item.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: properties,
			Required:   []string{"index"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleGetItem)
}

func (s *Server) registerDiscoverFeedTool() {
	tool := mcp.Tool{
		Name:        "discover_feed",
		Description: "Find the feed behind a web page URL. Tries the URL itself, then <link rel=\"alternate\"> tags, then common feed paths such as /feed.xml and /index.rdf.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"url": map[string]interface{}{
					"type":        "string",
					"description": "Site or page URL. Example: 'https://example.com'",
				},
			},
			Required: []string{"url"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleDiscoverFeed)
}

// Tool handlers

func (s *Server) handleParseFeed(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input ParseFeedInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	feed, err := s.load(ctx, s.parser(input.RemoveStyles, input.RemoveScripts), input.URL, input.XML)
	if err != nil {
		return nil, err
	}

	return jsonResult(feed)
}

func (s *Server) handleGetItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input GetItemInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	feed, err := s.load(ctx, s.parser(nil, nil), input.URL, input.XML)
	if err != nil {
		return nil, err
	}
	if input.Index < 0 || input.Index >= len(feed.Items) {
		return nil, fmt.Errorf("%w: %d (feed has %d items)", ErrIndexOutRange, input.Index, len(feed.Items))
	}

	item := feed.Items[input.Index]
	return jsonResult(GetItemOutput{
		Index:       input.Index,
		Count:       len(feed.Items),
		FeedTitle:   feed.Title,
		Fingerprint: item.Fingerprint(),
		Item:        item,
		Markdown:    content.ItemMarkdown(&item),
	})
}

func (s *Server) handleDiscoverFeed(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input DiscoverFeedInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	found, err := s.discoverer().Discover(ctx, input.URL)
	if err != nil {
		return nil, fmt.Errorf("discovery failed: %w", err)
	}

	output := DiscoverFeedOutput{
		URL:   found.URL,
		Title: found.Title,
		Type:  found.Type,
	}
	if found.Feed != nil {
		output.ItemCount = len(found.Feed.Items)
	}
	return jsonResult(output)
}

// load parses exactly one of rawURL or xml.
func (s *Server) load(ctx context.Context, p *parse.Parser, rawURL, xml *string) (*models.Feed, error) {
	hasURL := rawURL != nil && *rawURL != ""
	hasXML := xml != nil && *xml != ""

	switch {
	case hasURL && hasXML:
		return nil, ErrTwoSources
	case hasURL:
		s.logger.Debug("parsing feed url", "url", *rawURL)
		return p.ParseURL(ctx, *rawURL)
	case hasXML:
		return p.ParseString(*xml)
	}
	return nil, ErrNoSource
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
