// ABOUTME: MCP server implementation for feedparse
// ABOUTME: Provides tools, resources, and prompts for AI agents to normalize RSS, ATOM and RDF feeds

package mcp

import (
	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"

	"github.com/harper/feedparse/internal/discover"
	"github.com/harper/feedparse/internal/fetch"
	"github.com/harper/feedparse/internal/parse"
)

// Version is reported to MCP clients.
const Version = "1.0.0"

// Server wraps the MCP server with feedparse-specific context
type Server struct {
	mcpServer *server.MCPServer
	opts      parse.Options
	client    *fetch.Client
	logger    *log.Logger
}

// NewServer creates a new MCP server instance. Every tool call starts from
// opts; a nil client uses the default fetch timeout.
func NewServer(opts parse.Options, client *fetch.Client) *Server {
	if client == nil {
		client = fetch.NewClient(fetch.DefaultTimeout)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		opts:   opts,
		client: client,
		logger: logger,
	}

	s.mcpServer = server.NewMCPServer(
		"feedparse",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
		server.WithPromptCapabilities(true),
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

// ServeStdio starts the MCP server on stdio
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// parser returns a parser for one call, with optional sanitizer overrides.
func (s *Server) parser(removeStyles, removeScripts *bool) *parse.Parser {
	opts := s.opts
	if removeStyles != nil {
		opts.RemoveStyles = *removeStyles
	}
	if removeScripts != nil {
		opts.RemoveScripts = *removeScripts
	}
	return parse.New(opts).WithClient(s.client)
}

func (s *Server) discoverer() *discover.Discoverer {
	return discover.New(s.parser(nil, nil), s.client)
}
