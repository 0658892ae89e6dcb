package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davrho/oasynth/synth"
)

type requestBodyInput struct {
	Spec   specInput `json:"spec"`
	Path   string    `json:"path"   jsonschema:"The operation path, e.g. /pets"`
	Method string    `json:"method" jsonschema:"The HTTP method, e.g. post"`
}

type requestBodyOutput struct {
	ContentType string        `json:"contentType"`
	Schema      *synth.Schema `json:"schema,omitempty"`
	Required    bool          `json:"required"`
	Example     string        `json:"example"`
}

func handleRequestBody(_ context.Context, _ *mcp.CallToolRequest, input requestBodyInput) (*mcp.CallToolResult, requestBodyOutput, error) {
	doc, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), requestBodyOutput{}, nil
	}

	rb := synth.RequestBodyAt(doc, input.Path, input.Method)
	if rb == nil {
		return errResult(fmt.Errorf("no request body declared for %s %s", input.Method, input.Path)), requestBodyOutput{}, nil
	}

	desc := synth.BuildRequestBody(rb, doc, synth.WithMaxRefDepth(cfg.MaxRefDepth))
	if desc == nil {
		return errResult(fmt.Errorf("request body for %s %s has no content", input.Method, input.Path)), requestBodyOutput{}, nil
	}

	return nil, requestBodyOutput{
		ContentType: desc.ContentType,
		Schema:      desc.Schema,
		Required:    desc.Required,
		Example:     desc.Example,
	}, nil
}
