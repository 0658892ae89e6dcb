package synth

import (
	"sort"
	"strings"

	gojson "github.com/goccy/go-json"
)

// MediaType is one content-type entry of a request body's content map.
type MediaType struct {
	Schema  *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example any     `yaml:"example,omitempty" json:"example,omitempty"`
}

// RequestBody is the request-body specification of one operation.
type RequestBody struct {
	Required bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	Content  map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
}

// RequestBodyDescriptor is the builder's output: the selected content type,
// its resolved schema, and a display-ready example.
type RequestBodyDescriptor struct {
	ContentType string  `json:"contentType"`
	Schema      *Schema `json:"schema,omitempty"`
	Required    bool    `json:"required"`
	// Example is the pretty-printed JSON placeholder, ready to pre-fill an
	// editable request-body field. Explicit string examples pass through
	// verbatim.
	Example string `json:"example"`
}

// fallbackExample is substituted when nothing could be synthesized at the
// top level, so the editor is never pre-filled with literal null.
var fallbackExample = map[string]any{"data": "example"}

// RequestBodyFromValue decodes a raw requestBody value from a document.
// Returns nil when v is not a mapping.
func RequestBodyFromValue(v any) *RequestBody {
	m := asMap(v)
	if m == nil {
		return nil
	}
	rb := &RequestBody{Required: asBool(m["required"])}
	if content := asMap(m["content"]); content != nil {
		rb.Content = make(map[string]*MediaType, len(content))
		for mediaType, raw := range content {
			entry := asMap(raw)
			if entry == nil {
				continue
			}
			rb.Content[mediaType] = &MediaType{
				Schema:  SchemaFromValue(entry["schema"]),
				Example: entry["example"],
			}
		}
	}
	return rb
}

// RequestBodyAt locates the requestBody of an operation by path and HTTP
// method. Returns nil when the operation or its requestBody is absent.
func RequestBodyAt(doc Document, path, method string) *RequestBody {
	paths := asMap(doc["paths"])
	if paths == nil {
		return nil
	}
	op := asMap(asMap(paths[path])[strings.ToLower(method)])
	if op == nil {
		return nil
	}
	return RequestBodyFromValue(op["requestBody"])
}

// BuildRequestBody resolves a request body's schema and produces its
// descriptor. It never returns an error; every failure path degrades to a
// safe placeholder.
//
// Content-type selection prefers application/json; otherwise the
// lexicographically smallest declared content type is chosen, so repeated
// calls on the same input are reproducible.
func BuildRequestBody(rb *RequestBody, doc Document, opts ...Option) *RequestBodyDescriptor {
	if rb == nil {
		return nil
	}
	if len(rb.Content) == 0 {
		if !rb.Required {
			return nil
		}
		return &RequestBodyDescriptor{Required: true, Example: marshalExample(fallbackExample)}
	}

	contentType, media := selectMediaType(rb.Content)
	if media == nil {
		media = &MediaType{}
	}
	desc := &RequestBodyDescriptor{
		ContentType: contentType,
		Required:    rb.Required,
	}

	if media.Schema != nil {
		desc.Schema = NewResolver(opts...).ResolveAll(media.Schema, doc)
	}

	if media.Example != nil {
		if s, ok := media.Example.(string); ok {
			desc.Example = s
		} else {
			desc.Example = marshalExample(media.Example)
		}
		return desc
	}

	var value any
	if desc.Schema != nil {
		value = NewSynthesizer(opts...).Synthesize(desc.Schema)
	}
	if value == nil {
		value = fallbackExample
	}
	desc.Example = marshalExample(value)
	return desc
}

// selectMediaType picks the application/json entry when present, else the
// lexicographically first declared entry.
func selectMediaType(content map[string]*MediaType) (string, *MediaType) {
	if media, ok := content["application/json"]; ok {
		return "application/json", media
	}
	keys := make([]string, 0, len(content))
	for k := range content {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys[0], content[keys[0]]
}

// marshalExample pretty-prints a synthesized value for display.
func marshalExample(v any) string {
	data, err := gojson.MarshalIndent(v, "", "  ")
	if err != nil {
		// JSON-compatible values cannot fail to marshal; degrade anyway.
		return `{"data": "example"}`
	}
	return string(data)
}
