package mcpserver

import (
	"fmt"

	"github.com/davrho/oasynth/synth"
)

// specInput represents the two ways a spec document can be provided to a
// tool. Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML)"`
}

// resolve loads the spec document from whichever input was provided.
func (s specInput) resolve() (synth.Document, error) {
	switch {
	case s.File != "" && s.Content != "":
		return nil, fmt.Errorf("exactly one of file or content must be provided, got both")
	case s.File != "":
		return synth.LoadDocumentFile(s.File)
	case s.Content != "":
		if int64(len(s.Content)) > cfg.MaxInlineSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OASYNTH_MAX_INLINE_SIZE to increase",
				len(s.Content), cfg.MaxInlineSize)
		}
		return synth.LoadDocument([]byte(s.Content))
	default:
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}
}

// warningStrings converts resolver warnings to plain strings for output.
func warningStrings(warnings []error) []string {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]string, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, w.Error())
	}
	return out
}
