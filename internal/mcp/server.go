// Package mcp exposes the collection tracker's operations as MCP tools
// over stdio.
package mcp

import (
	"database/sql"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hpungsan/cardex/internal/config"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"card_list": {
		def:     listToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleList },
	},
	"card_search": {
		def:     searchToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSearch },
	},
	"card_collect": {
		def:     collectToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCollect },
	},
	"card_sell": {
		def:     sellToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSell },
	},
	"card_series_list": {
		def:     seriesListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSeriesList },
	},
	"card_import": {
		def:     importToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleImport },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with card tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
func NewServer(db *sql.DB, cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"cardex",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(db, cfg)

	disabled := make(map[string]bool)
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(db *sql.DB, cfg *config.Config, version string) error {
	s := NewServer(db, cfg, version)
	return server.ServeStdio(s)
}
