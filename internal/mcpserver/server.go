// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes typesmith capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/typesmith/typesmith"
)

const serverInstructions = `typesmith MCP server — parses JSON Schema / OpenAPI component schema documents and generates typed model declarations.

Configuration: All defaults are configurable via TYPESMITH_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- TYPESMITH_MAX_INLINE_SIZE (default: 4194304) — maximum inline schema content size in bytes
- TYPESMITH_NAMESPACE — default namespace for generated declarations
- TYPESMITH_LANGUAGE — default target language template set (default: csharp)`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "typesmith", Version: typesmith.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse a JSON Schema or OpenAPI component schema document. Returns a structural summary: title, source format, and per-definition shape (kind, property count, enumeration size). Accepts JSON or YAML via file path or inline content.",
	}, handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate typed model declarations from a JSON Schema or OpenAPI component schema document. Returns the generated source plus per-type names and any generation issues. Use output to write to a file instead of returning the source inline. Namespace and scalar type mappings are configurable per call; defaults come from TYPESMITH_NAMESPACE and TYPESMITH_LANGUAGE env vars.",
	}, handleGenerate)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// truncateText shortens text to at most maxLen runes, appending "..." when
// anything was cut.
func truncateText(text string, maxLen int) string {
	if text == "" {
		return ""
	}
	runes := []rune(text)
	if maxLen < 0 {
		maxLen = 0
	}
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}
