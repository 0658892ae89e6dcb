package synth

import (
	"strconv"
	"strings"

	"github.com/davrho/oasynth/specerrors"
)

// MaxRefDepth is the default maximum depth allowed for nested $ref resolution.
// This prevents stack overflow from deeply nested (but non-circular) references.
const MaxRefDepth = 100

// Resolver resolves $ref pointers in a spec document.
//
// A Resolver carries per-pass state (the resolving set for cycle detection
// and the warning channel) and must not be shared between concurrent passes.
// The Document is an explicit parameter on every call; a Resolver holds no
// reference to it.
type Resolver struct {
	logger      Logger
	maxRefDepth int
	// resolving tracks refs currently being resolved in the recursion stack
	resolving map[string]bool
	// warnings accumulates degraded resolutions for post-pass inspection
	warnings []error
}

// NewResolver creates a reference resolver for same-document pointers.
func NewResolver(opts ...Option) *Resolver {
	cfg := newConfig(opts...)
	return &Resolver{
		logger:      cfg.logger,
		maxRefDepth: cfg.maxRefDepth,
		resolving:   make(map[string]bool),
	}
}

// Warnings returns the degraded resolutions recorded during this pass.
// Entries are *specerrors.ReferenceError or *specerrors.ResourceLimitError
// values; they are never returned from the resolution calls themselves.
func (r *Resolver) Warnings() []error {
	return r.warnings
}

// ResolveReference resolves a single reference node against doc.
// Non-reference nodes are returned unchanged. Resolution never fails: an
// unresolvable or circular pointer degrades to the original reference node,
// which downstream synthesis treats as opaque.
func (r *Resolver) ResolveReference(node *Schema, doc Document) *Schema {
	return r.resolveReference(node, doc, 0)
}

// ResolveAll resolves node and every reference reachable from it, returning
// a new reference-free tree (except for stubs left by degraded resolutions).
// The input node and doc are never mutated.
func (r *Resolver) ResolveAll(node *Schema, doc Document) *Schema {
	return r.resolveAll(node, doc, 0)
}

func (r *Resolver) resolveReference(node *Schema, doc Document, depth int) *Schema {
	if !node.IsRef() {
		return node
	}
	ref := node.Ref

	if depth > r.maxRefDepth {
		r.warn(&specerrors.ResourceLimitError{
			ResourceType: "ref_depth",
			Limit:        int64(r.maxRefDepth),
			Actual:       int64(depth),
			Message:      "reference chain too deep",
		})
		r.logger.Warn("reference chain exceeds depth limit", "ref", ref, "depth", depth)
		return node
	}

	// A pointer already on the resolution stack means a reference cycle.
	// Leave the reference node in place as a stub rather than recursing.
	if r.resolving[ref] {
		r.warn(&specerrors.ReferenceError{Ref: ref, IsCircular: true})
		r.logger.Debug("circular reference left unresolved", "ref", ref)
		return node
	}

	target, missing, ok := lookupPointer(doc, ref)
	if !ok {
		if missing == "" {
			r.warn(&specerrors.ReferenceError{Ref: ref, IsMalformed: true})
			r.logger.Warn("malformed $ref ignored", "ref", ref)
		} else {
			r.warn(&specerrors.ReferenceError{Ref: ref, Segment: missing})
			r.logger.Warn("unresolved reference", "ref", ref, "missing", missing)
		}
		return node
	}

	resolved := SchemaFromValue(target)
	if resolved == nil {
		r.warn(&specerrors.ReferenceError{Ref: ref, Message: "target is not a schema object"})
		r.logger.Warn("reference target is not a schema object", "ref", ref)
		return node
	}

	// Keep ref marked as resolving while processing the resolved content so
	// self-references (e.g. Node.next -> Node) are detected one level deeper.
	r.resolving[ref] = true
	resolved = r.resolveAll(resolved, doc, depth+1)
	delete(r.resolving, ref)

	return resolved
}

func (r *Resolver) resolveAll(node *Schema, doc Document, depth int) *Schema {
	if node == nil {
		return nil
	}
	if node.IsRef() {
		return r.resolveReference(node, doc, depth)
	}
	if depth > r.maxRefDepth {
		r.warn(&specerrors.ResourceLimitError{
			ResourceType: "ref_depth",
			Limit:        int64(r.maxRefDepth),
			Actual:       int64(depth),
			Message:      "schema tree too deeply nested",
		})
		return node
	}

	cp := node.shallowCopy()
	for name, prop := range cp.Properties {
		cp.Properties[name] = r.resolveAll(prop, doc, depth+1)
	}
	if cp.Items != nil {
		cp.Items = r.resolveAll(cp.Items, doc, depth+1)
	}
	if cp.isComposite() {
		r.normalizeComposite(cp, doc, depth)
	}
	return cp
}

func (r *Resolver) warn(err error) {
	r.warnings = append(r.warnings, err)
}

// lookupPointer walks doc along the pointer's path segments.
// It returns the located value, or the first missing segment when the walk
// dead-ends. ok is false for malformed pointers (missing == "") and for
// missing segments alike.
func lookupPointer(doc Document, ref string) (value any, missing string, ok bool) {
	if !strings.HasPrefix(ref, "#/") {
		return nil, "", false
	}
	parts := strings.Split(strings.TrimPrefix(ref, "#/"), "/")

	current := any(map[string]any(doc))
	for _, part := range parts {
		part = unescapeJSONPointer(part)

		switch v := current.(type) {
		case map[string]any:
			next, found := v[part]
			if !found {
				return nil, part, false
			}
			current = next

		case []any:
			// Array indexing per RFC 6901 (JSON Pointer)
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(v) {
				return nil, part, false
			}
			current = v[index]

		default:
			if m := asMap(current); m != nil {
				next, found := m[part]
				if !found {
					return nil, part, false
				}
				current = next
				continue
			}
			return nil, part, false
		}
	}
	return current, "", true
}

// unescapeJSONPointer unescapes JSON Pointer tokens.
// Per RFC 6901, ~1 represents / and ~0 represents ~.
func unescapeJSONPointer(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	token = strings.ReplaceAll(token, "~0", "~")
	return token
}
