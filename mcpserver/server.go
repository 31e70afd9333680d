// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes sniffing, normalization, and downgrade as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oas-emend/emendapi"
)

const serverInstructions = `emendapi MCP server — classifies, normalizes, and downgrades Swagger/OpenAPI documents.

Tools:
- sniff_version: classify a decoded document as Swagger 2.0, OpenAPI 3.0, OpenAPI 3.1, or already-emended, without converting it.
- convert_document: normalize a Swagger 2.0, OpenAPI 3.0, or OpenAPI 3.1 document into the emended OpenAPI 3.1 dialect.
- downgrade_document: re-express an emended document as OpenAPI 3.0 or Swagger 2.0, recording every lossy transformation.

Documents are accepted as YAML or JSON text (JSON is a strict subset of YAML so either works) and returned as YAML text.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or ctx is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "emendapi", Version: emendapi.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "sniff_version",
		Description: "Classify a Swagger/OpenAPI document (given as YAML or JSON text) as swagger2.0, openapi3.0, openapi3.1, emended, or unrecognized, without converting it.",
	}, handleSniffVersion)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_document",
		Description: "Normalize a Swagger 2.0, OpenAPI 3.0.x, or OpenAPI 3.1.x document (given as YAML or JSON text) into the emended OpenAPI 3.1 dialect. Returns the converted document plus every recorded issue.",
	}, handleConvertDocument)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "downgrade_document",
		Description: "Re-express an emended document (given as YAML or JSON text) as OpenAPI 3.0.x or Swagger 2.0. Target must be \"3.0\" or \"2.0\". Returns the downgraded document plus every recorded lossy transformation.",
	}, handleDowngradeDocument)
}

// errResult builds an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
