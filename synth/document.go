package synth

import (
	"os"

	"github.com/davrho/oasynth/specerrors"
	"go.yaml.in/yaml/v4"
)

// Document is the root spec document that all pointers in a resolution pass
// are resolved against. It is established once per load and must be treated
// as immutable while any resolution or synthesis pass is using it.
type Document map[string]any

// LoadDocument parses a YAML or JSON spec document from raw bytes.
// The YAML parser accepts JSON input, so both formats route through here.
func LoadDocument(data []byte) (Document, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &specerrors.ParseError{
			Message: "failed to parse spec document",
			Cause:   err,
		}
	}
	return doc, nil
}

// LoadDocumentFile reads and parses a YAML or JSON spec document from disk.
func LoadDocumentFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &specerrors.ParseError{
			Path:    path,
			Message: "failed to read spec document",
			Cause:   err,
		}
	}
	doc, err := LoadDocument(data)
	if err != nil {
		if pe, ok := err.(*specerrors.ParseError); ok { //nolint:errorlint // constructed above
			pe.Path = path
		}
		return nil, err
	}
	return doc, nil
}
