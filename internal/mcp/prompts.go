// ABOUTME: MCP prompt definitions and handlers
// ABOUTME: Provides workflow templates for reading and summarizing a feed

package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerPrompts() {
	s.registerSummarizeFeedPrompt()
	s.registerInspectFeedPrompt()
}

func (s *Server) registerSummarizeFeedPrompt() {
	s.mcpServer.AddPrompt(
		mcp.Prompt{
			Name:        "summarize-feed",
			Description: "Summarize the latest items of a feed, finding the feed first when given a plain web page",
			Arguments: []mcp.PromptArgument{
				{
					Name:        "url",
					Description: "Feed or site URL",
					Required:    true,
				},
				{
					Name:        "count",
					Description: "How many items to cover (default: 5)",
					Required:    false,
				},
			},
		},
		s.handleSummarizeFeed,
	)
}

func (s *Server) handleSummarizeFeed(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	url := req.Params.Arguments["url"]
	if url == "" {
		return nil, fmt.Errorf("url argument is required")
	}
	count := "5"
	if c := req.Params.Arguments["count"]; c != "" {
		count = c
	}

	template := fmt.Sprintf(`# Summarize a Feed

## Overview
Produce a short digest of the %[2]s most recent items published at %[1]s.

## Workflow Steps

### Step 1: Load the Feed
Call the parse_feed tool with url=%[1]s.
If it fails because the document is not a feed, call discover_feed with the
same url and use the returned feed URL instead.

### Step 2: Pick the Items
Items come back in document order. Use createdAt or lastUpdated to find the
%[2]s newest ones; when dates are missing, take the first %[2]s.

### Step 3: Read Each Item
Call get_item with the feed url and each chosen index. Work from the markdown
field; textContent is a plain-text fallback.

### Step 4: Write the Digest
For every item give the title, a link, and one or two sentences. Mention the
feed title and its type (RSS, ATOM or RDF) at the top.
`, url, count)

	return &mcp.GetPromptResult{
		Description: "Feed summary workflow",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: template,
				},
			},
		},
	}, nil
}

func (s *Server) registerInspectFeedPrompt() {
	s.mcpServer.AddPrompt(
		mcp.Prompt{
			Name:        "inspect-feed",
			Description: "Check which normalized fields a feed fills and explain the gaps using the selector tables",
			Arguments: []mcp.PromptArgument{
				{
					Name:        "url",
					Description: "Feed URL",
					Required:    true,
				},
			},
		},
		s.handleInspectFeed,
	)
}

func (s *Server) handleInspectFeed(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	url := req.Params.Arguments["url"]
	if url == "" {
		return nil, fmt.Errorf("url argument is required")
	}

	template := fmt.Sprintf(`# Inspect a Feed

## Workflow Steps

### Step 1: Parse
Call parse_feed with url=%[1]s and note every empty field on the feed and on
its first few items.

### Step 2: Compare Against the Tables
Read the %[2]s resource. Find the dialect matching the feed type and, for each
empty field, list the selectors that were tried in order.

### Step 3: Report
Explain which elements the publisher would need to add for each empty field.
Unparseable dates are kept as written, so flag any date that is not in the
normalized format.
`, url, formatsURI)

	return &mcp.GetPromptResult{
		Description: "Feed field coverage workflow",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: template,
				},
			},
		},
	}, nil
}
