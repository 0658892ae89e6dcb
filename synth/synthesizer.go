package synth

import "math"

// Synthesizer produces representative placeholder values structurally
// matching a resolved schema. Values are plausible, not business-meaningful.
//
// A Synthesizer is stateless apart from its configuration and is safe to
// reuse across schemas and goroutines when the configured RandSource is.
type Synthesizer struct {
	logger   Logger
	maxDepth int
	rnd      RandSource
	pool     []string
}

// NewSynthesizer creates a Synthesizer.
func NewSynthesizer(opts ...Option) *Synthesizer {
	cfg := newConfig(opts...)
	return &Synthesizer{
		logger:   cfg.logger,
		maxDepth: cfg.maxRefDepth,
		rnd:      cfg.rnd,
		pool:     cfg.fillerPool,
	}
}

// Synthesize returns a native JSON-compatible value matching node's shape,
// or nil when the node is unsynthesizable (no recognized type and no
// properties). Callers that need a display string serialize the result;
// see BuildRequestBody.
func (s *Synthesizer) Synthesize(node *Schema) any {
	return s.synthesize(node, "", 0)
}

// synthesize walks one schema node. name is the property name the node was
// reached through, consulted by the value heuristics for leaf nodes.
//
// Precedence is fixed: an explicit example always wins; an untyped node with
// properties is coerced to object before its default is consulted; then the
// default; then type-driven synthesis.
func (s *Synthesizer) synthesize(node *Schema, name string, depth int) any {
	if node == nil {
		return nil
	}
	if depth > s.maxDepth {
		s.logger.Warn("synthesis depth limit reached", "property", name, "depth", depth)
		return nil
	}

	if node.Example != nil {
		return node.Example
	}

	// Untyped nodes carrying a property map go straight to the object
	// branch; their defaults are intentionally unreachable.
	if node.Type == "" && len(node.Properties) > 0 {
		return s.synthesizeObject(node, depth)
	}
	if node.Type == "" && node.isComposite() {
		return s.synthesizeComposite(node, name, depth)
	}

	if node.Default != nil {
		return node.Default
	}

	switch node.Type {
	case "string":
		return s.synthesizeString(node, name)
	case "number":
		return s.synthesizeNumber(node, name, false)
	case "integer":
		return s.synthesizeNumber(node, name, true)
	case "boolean":
		return false
	case "array":
		if node.Items == nil {
			return []any{}
		}
		return []any{s.synthesize(node.Items, name, depth+1)}
	case "object":
		return s.synthesizeObject(node, depth)
	default:
		// Reference stubs and opaque nodes cannot be synthesized.
		s.logger.Debug("unsynthesizable schema", "property", name, "ref", node.Ref)
		return nil
	}
}

func (s *Synthesizer) synthesizeObject(node *Schema, depth int) map[string]any {
	out := make(map[string]any, len(node.Properties))
	for propName, prop := range node.Properties {
		out[propName] = s.synthesize(prop, propName, depth+1)
	}
	return out
}

// synthesizeComposite takes the first member of the composition keyword.
// Members were resolved independently by the resolver; first-member is the
// deterministic choice.
func (s *Synthesizer) synthesizeComposite(node *Schema, name string, depth int) any {
	members := node.compositeMembers()
	if len(members) == 0 {
		return nil
	}
	return s.synthesize(members[0], name, depth+1)
}

func (s *Synthesizer) synthesizeString(node *Schema, name string) any {
	if v, ok := formatValue(node.Format); ok {
		return v
	}
	if len(node.Enum) > 0 {
		return node.Enum[0]
	}
	if v, ok := valueForName(stringNameRules, name); ok {
		return v
	}
	return fillerWord(s.rnd, s.pool)
}

func (s *Synthesizer) synthesizeNumber(node *Schema, name string, integer bool) any {
	switch {
	case node.Minimum != nil && node.Maximum == nil:
		return numericValue(*node.Minimum, integer)
	case node.Minimum != nil && node.Maximum != nil:
		return numericValue(math.Floor((*node.Minimum+*node.Maximum)/2), integer)
	}
	if len(node.Enum) > 0 {
		return node.Enum[0]
	}
	if v, ok := valueForName(numberNameRules, name); ok {
		return v
	}
	if integer {
		return 42
	}
	return 42.5
}

// numericValue narrows a float to int for integer-typed schemas when the
// value is whole, so synthesized integers render without a decimal point.
func numericValue(f float64, integer bool) any {
	if integer && f == math.Trunc(f) {
		return int(f)
	}
	return f
}
