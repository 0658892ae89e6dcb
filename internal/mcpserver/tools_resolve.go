package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davrho/oasynth/synth"
)

type resolveRefInput struct {
	Spec specInput `json:"spec"`
	Ref  string    `json:"ref" jsonschema:"The $ref pointer to resolve, e.g. #/components/schemas/Pet"`
}

type resolveRefOutput struct {
	Schema   *synth.Schema `json:"schema"`
	Resolved bool          `json:"resolved"`
	Warnings []string      `json:"warnings,omitempty"`
}

func handleResolveRef(_ context.Context, _ *mcp.CallToolRequest, input resolveRefInput) (*mcp.CallToolResult, resolveRefOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), resolveRefOutput{}, nil
	}

	r := synth.NewResolver(synth.WithMaxRefDepth(cfg.MaxRefDepth))
	schema := r.ResolveReference(&synth.Schema{Ref: input.Ref}, doc)

	return nil, resolveRefOutput{
		Schema:   schema,
		Resolved: !schema.IsRef(),
		Warnings: warningStrings(r.Warnings()),
	}, nil
}
