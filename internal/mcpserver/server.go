// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the oasynth engine as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davrho/oasynth"
)

const serverInstructions = `oasynth MCP server — resolves $ref pointers in OpenAPI specs and synthesizes placeholder request bodies.

Configuration: defaults are configurable via OASYNTH_* environment variables set in your MCP client config.

Key settings:
- OASYNTH_MAX_REF_DEPTH (default: 100) — maximum $ref resolution depth
- OASYNTH_MAX_INLINE_SIZE (default: 1048576) — maximum inline spec content size in bytes

All tools degrade instead of failing: unresolvable pointers are returned as
reference stubs and reported in the warnings array, never as tool errors.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasynth", Version: oasynth.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_ref",
		Description: "Resolve a $ref pointer (e.g. #/components/schemas/Pet) against an OpenAPI document. Returns the fully resolved, reference-free schema. Circular or missing references degrade to reference stubs listed in warnings.",
	}, handleResolveRef)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "synthesize_example",
		Description: "Synthesize a representative placeholder value for a schema referenced by a $ref pointer in an OpenAPI document. Values are structurally plausible, not business-meaningful.",
	}, handleSynthesizeExample)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "request_body",
		Description: "Build the request-body descriptor for one operation (path + method): selected content type, resolved schema, required flag, and a pretty-printed example ready to pre-fill an editor. Prefers application/json, else the lexicographically first content type.",
	}, handleRequestBody)
}

// pathPattern matches filesystem paths in error messages so they can be
// redacted before leaving the server.
var pathPattern = regexp.MustCompile(`(?:/[\w.\-]+)+`)

// sanitizeError removes absolute paths from an error message.
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
