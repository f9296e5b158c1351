// Package tools provides shared types and helpers for registering MCP tools
// on an MCP server instance.
package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jamesprial/jianshu-mcp/internal/safety"
)

// Registration pairs an MCP tool definition with its handler function.
type Registration struct {
	Tool    mcp.Tool
	Handler server.ToolHandlerFunc
}

// Filter returns the registrations whose tool name f allows, preserving
// order.
func Filter(registrations []Registration, f *safety.Filter) []Registration {
	out := make([]Registration, 0, len(registrations))
	for _, r := range registrations {
		if f.IsAllowed(r.Tool.Name) {
			out = append(out, r)
		}
	}
	return out
}

// RegisterAll adds every Registration in the provided slice to the given MCP
// server.
func RegisterAll(s *server.MCPServer, registrations []Registration) {
	for _, r := range registrations {
		s.AddTool(r.Tool, r.Handler)
	}
}
