package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davrho/oasynth/synth"
)

type synthesizeInput struct {
	Spec specInput `json:"spec"`
	Ref  string    `json:"ref" jsonschema:"The $ref pointer of the schema to synthesize an example for"`
}

type synthesizeOutput struct {
	Example  any      `json:"example"`
	Warnings []string `json:"warnings,omitempty"`
}

func handleSynthesizeExample(_ context.Context, _ *mcp.CallToolRequest, input synthesizeInput) (*mcp.CallToolResult, synthesizeOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), synthesizeOutput{}, nil
	}

	r := synth.NewResolver(synth.WithMaxRefDepth(cfg.MaxRefDepth))
	schema := r.ResolveReference(&synth.Schema{Ref: input.Ref}, doc)
	example := synth.NewSynthesizer().Synthesize(schema)

	return nil, synthesizeOutput{
		Example:  example,
		Warnings: warningStrings(r.Warnings()),
	}, nil
}
