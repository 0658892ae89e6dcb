package synth

// Schema represents a single schema node from an OAS-flavored document.
// It covers the keyword subset the synthesis engine consumes; unknown
// keywords are dropped during decoding.
type Schema struct {
	// Reference
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`
	Example     any    `yaml:"example,omitempty" json:"example,omitempty"`

	// Type validation
	Type   string `yaml:"type,omitempty" json:"type,omitempty"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	Enum   []any  `yaml:"enum,omitempty" json:"enum,omitempty"`

	// Numeric validation
	Minimum *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	Maximum *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`

	// Object validation
	Properties map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required   []string           `yaml:"required,omitempty" json:"required,omitempty"`

	// Array validation
	Items *Schema `yaml:"items,omitempty" json:"items,omitempty"`

	// Schema composition
	AllOf []*Schema `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	OneOf []*Schema `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
	AnyOf []*Schema `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`

	// OAS 3.0 extension
	Nullable bool `yaml:"nullable,omitempty" json:"nullable,omitempty"`
}

// IsRef reports whether this node is a reference node.
func (s *Schema) IsRef() bool {
	return s != nil && s.Ref != ""
}

// isComposite reports whether this node carries any composition keyword.
func (s *Schema) isComposite() bool {
	return s != nil && (len(s.AllOf) > 0 || len(s.OneOf) > 0 || len(s.AnyOf) > 0)
}

// DeclaredType returns the node's effective type. An untyped node with a
// property map is inferred as "object"; an untyped node without one has no
// effective type and returns "".
func (s *Schema) DeclaredType() string {
	if s == nil {
		return ""
	}
	if s.Type == "" && len(s.Properties) > 0 {
		return "object"
	}
	return s.Type
}

// shallowCopy returns a copy of the node with fresh property/member
// containers so resolution never mutates its input. Nested *Schema values
// are shared until they are themselves resolved.
func (s *Schema) shallowCopy() *Schema {
	if s == nil {
		return nil
	}
	cp := *s
	if s.Properties != nil {
		cp.Properties = make(map[string]*Schema, len(s.Properties))
		for k, v := range s.Properties {
			cp.Properties[k] = v
		}
	}
	if s.Enum != nil {
		cp.Enum = append([]any(nil), s.Enum...)
	}
	if s.Required != nil {
		cp.Required = append([]string(nil), s.Required...)
	}
	if s.AllOf != nil {
		cp.AllOf = append([]*Schema(nil), s.AllOf...)
	}
	if s.OneOf != nil {
		cp.OneOf = append([]*Schema(nil), s.OneOf...)
	}
	if s.AnyOf != nil {
		cp.AnyOf = append([]*Schema(nil), s.AnyOf...)
	}
	return &cp
}

// SchemaFromValue decodes a raw document value (as produced by LoadDocument)
// into a Schema. Decoding is tolerant: fields with unexpected shapes are
// skipped rather than failing, matching the engine's degradation policy.
// Returns nil when v is not a mapping.
func SchemaFromValue(v any) *Schema {
	m := asMap(v)
	if m == nil {
		return nil
	}

	s := &Schema{
		Ref:         asString(m["$ref"]),
		Title:       asString(m["title"]),
		Description: asString(m["description"]),
		Type:        asString(m["type"]),
		Format:      asString(m["format"]),
		Default:     m["default"],
		Example:     m["example"],
		Minimum:     asFloat64Ptr(m["minimum"]),
		Maximum:     asFloat64Ptr(m["maximum"]),
		Nullable:    asBool(m["nullable"]),
	}

	if enum, ok := m["enum"].([]any); ok {
		s.Enum = append([]any(nil), enum...)
	}
	if req, ok := m["required"].([]any); ok {
		for _, r := range req {
			if name := asString(r); name != "" {
				s.Required = append(s.Required, name)
			}
		}
	}
	if props := asMap(m["properties"]); props != nil {
		s.Properties = make(map[string]*Schema, len(props))
		for name, raw := range props {
			if ps := SchemaFromValue(raw); ps != nil {
				s.Properties[name] = ps
			}
		}
	}
	if items := asMap(m["items"]); items != nil {
		s.Items = SchemaFromValue(items)
	}
	s.AllOf = schemasFromSlice(m["allOf"])
	s.OneOf = schemasFromSlice(m["oneOf"])
	s.AnyOf = schemasFromSlice(m["anyOf"])

	return s
}

func schemasFromSlice(v any) []*Schema {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]*Schema, 0, len(raw))
	for _, item := range raw {
		if s := SchemaFromValue(item); s != nil {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// asMap normalizes the two map shapes YAML decoders produce.
func asMap(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case Document:
		return m
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out
	default:
		return nil
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asFloat64Ptr(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case float32:
		f := float64(n)
		return &f
	case int:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	case uint64:
		f := float64(n)
		return &f
	default:
		return nil
	}
}
