// ABOUTME: MCP resource providers for feedparse
// ABOUTME: Exposes the supported dialects and their selector tables as read-only JSON

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/feedparse/internal/formats"
)

const formatsURI = "feedparse://formats"

// ResourceData is the standard response format for all resources.
type ResourceData struct {
	Metadata ResourceMetadata  `json:"metadata"`
	Data     interface{}       `json:"data"`
	Links    map[string]string `json:"links"`
}

// ResourceMetadata contains metadata about the resource response.
type ResourceMetadata struct {
	Timestamp   time.Time `json:"timestamp"`
	Count       int       `json:"count"`
	ResourceURI string    `json:"resource_uri"`
}

// DialectOutput describes one supported feed dialect.
type DialectOutput struct {
	Name       string            `json:"name"`
	Type       string            `json:"type"`
	Namespaces map[string]string `json:"namespaces"`
	Items      string            `json:"items"`
	FeedFields map[string]string `json:"feed_fields"`
	ItemFields map[string]string `json:"item_fields"`
}

func (s *Server) registerResources() {
	s.registerFormatsResource()
}

func (s *Server) registerFormatsResource() {
	s.mcpServer.AddResource(
		mcp.Resource{
			URI:         formatsURI,
			Name:        "Supported Formats",
			Description: "The RSS 2.0, ATOM and RDF dialects feedparse understands, with their namespace prefixes and the XPath selectors behind every normalized field",
			MIMEType:    "application/json",
		},
		s.handleFormatsResource,
	)
}

func (s *Server) handleFormatsResource(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	dialects := formats.Dialects()
	outputs := make([]DialectOutput, 0, len(dialects))
	for _, d := range dialects {
		outputs = append(outputs, DialectOutput{
			Name:       d.Name,
			Type:       string(d.FeedType),
			Namespaces: d.Namespaces,
			Items:      d.Items,
			FeedFields: flattenTable(d.Feed),
			ItemFields: flattenTable(d.Item),
		})
	}

	resourceData := ResourceData{
		Metadata: ResourceMetadata{
			Timestamp:   time.Now(),
			Count:       len(outputs),
			ResourceURI: formatsURI,
		},
		Data: outputs,
		Links: map[string]string{
			"parse_feed": "tool:parse_feed",
			"get_item":   "tool:get_item",
		},
	}

	jsonBytes, err := json.MarshalIndent(resourceData, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resource data: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}

// flattenTable maps each field, and each group member as group.member, to
// its selector.
func flattenTable(table formats.Table) map[string]string {
	out := make(map[string]string, len(table))
	for _, f := range table {
		if !f.IsGroup() {
			out[f.Name] = f.Selector
			continue
		}
		for _, sub := range f.Group {
			out[f.Name+"."+sub.Name] = sub.Selector
		}
	}
	return out
}
