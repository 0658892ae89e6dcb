package synth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davrho/oasynth/specerrors"
)

// loadTestDoc parses inline YAML into a Document, failing the test on error.
func loadTestDoc(t *testing.T, src string) Document {
	t.Helper()
	doc, err := LoadDocument([]byte(src))
	require.NoError(t, err, "test document should parse")
	return doc
}

func TestResolveReferenceIdentity(t *testing.T) {
	doc := loadTestDoc(t, `{}`)
	r := NewResolver()

	node := &Schema{Type: "string"}
	resolved := r.ResolveReference(node, doc)

	assert.Same(t, node, resolved, "resolving a non-reference node should return it unchanged")
	assert.Empty(t, r.Warnings())
}

func TestResolveReferenceBasic(t *testing.T) {
	doc := loadTestDoc(t, `
components:
  schemas:
    Foo:
      type: string
`)
	r := NewResolver()

	resolved := r.ResolveReference(&Schema{Ref: "#/components/schemas/Foo"}, doc)

	require.NotNil(t, resolved)
	assert.Equal(t, "string", resolved.Type)
	assert.Empty(t, resolved.Ref, "resolved node should not carry the reference")
	assert.Empty(t, r.Warnings())
}

func TestResolveReferenceTransitiveChain(t *testing.T) {
	// A -> B -> concrete schema should resolve in one call.
	doc := loadTestDoc(t, `
components:
  schemas:
    A:
      $ref: '#/components/schemas/B'
    B:
      type: integer
      format: int64
`)
	r := NewResolver()

	resolved := r.ResolveReference(&Schema{Ref: "#/components/schemas/A"}, doc)

	require.NotNil(t, resolved)
	assert.Equal(t, "integer", resolved.Type)
	assert.Equal(t, "int64", resolved.Format)
}

func TestResolveReferenceMissingSegment(t *testing.T) {
	doc := loadTestDoc(t, `
components:
  schemas:
    Foo:
      type: string
`)
	r := NewResolver()

	node := &Schema{Ref: "#/components/schemas/Missing"}
	resolved := r.ResolveReference(node, doc)

	assert.Same(t, node, resolved, "unresolvable pointer should degrade to the original reference node")

	require.Len(t, r.Warnings(), 1)
	var refErr *specerrors.ReferenceError
	require.ErrorAs(t, r.Warnings()[0], &refErr)
	assert.Equal(t, "#/components/schemas/Missing", refErr.Ref)
	assert.Equal(t, "Missing", refErr.Segment)
}

func TestResolveReferenceMalformedPointer(t *testing.T) {
	doc := loadTestDoc(t, `{}`)
	r := NewResolver()

	node := &Schema{Ref: "http://elsewhere/schema.yaml#/Foo"}
	resolved := r.ResolveReference(node, doc)

	assert.Same(t, node, resolved, "non-local pointer should be treated opaquely")
	require.Len(t, r.Warnings(), 1)
	assert.ErrorIs(t, r.Warnings()[0], specerrors.ErrMalformedPointer)
}

func TestResolveReferenceDirectCycle(t *testing.T) {
	// A -> B -> A must terminate with a reference stub rather than recursing.
	doc := loadTestDoc(t, `
components:
  schemas:
    A:
      $ref: '#/components/schemas/B'
    B:
      $ref: '#/components/schemas/A'
`)
	r := NewResolver()

	resolved := r.ResolveReference(&Schema{Ref: "#/components/schemas/A"}, doc)

	require.NotNil(t, resolved)
	assert.True(t, resolved.IsRef(), "cycle should degrade to a reference stub")

	found := false
	for _, w := range r.Warnings() {
		if errors.Is(w, specerrors.ErrCircularReference) {
			found = true
		}
	}
	assert.True(t, found, "a circular-reference warning should be recorded")
}

func TestResolveAllSelfReferentialSchema(t *testing.T) {
	// Node.next -> Node: the first encounter resolves, the second is left
	// as a stub one level deeper.
	doc := loadTestDoc(t, `
components:
  schemas:
    Node:
      type: object
      properties:
        value:
          type: string
        next:
          $ref: '#/components/schemas/Node'
`)
	r := NewResolver()

	resolved := r.ResolveReference(&Schema{Ref: "#/components/schemas/Node"}, doc)

	require.NotNil(t, resolved)
	assert.Equal(t, "object", resolved.Type)
	require.Contains(t, resolved.Properties, "next")
	next := resolved.Properties["next"]
	assert.True(t, next.IsRef(), "self-reference should remain a stub")
	assert.Equal(t, "#/components/schemas/Node", next.Ref)
}

func TestResolveAllNestedStructures(t *testing.T) {
	doc := loadTestDoc(t, `
components:
  schemas:
    Tag:
      type: string
    Pet:
      type: object
      properties:
        tags:
          type: array
          items:
            $ref: '#/components/schemas/Tag'
`)
	r := NewResolver()

	resolved := r.ResolveAll(&Schema{Ref: "#/components/schemas/Pet"}, doc)

	require.NotNil(t, resolved)
	tags := resolved.Properties["tags"]
	require.NotNil(t, tags)
	require.NotNil(t, tags.Items)
	assert.Equal(t, "string", tags.Items.Type)
}

func TestResolveAllCompositeMembers(t *testing.T) {
	doc := loadTestDoc(t, `
components:
  schemas:
    Base:
      type: object
      properties:
        id:
          type: integer
    Extra:
      type: object
      properties:
        note:
          type: string
`)
	node := &Schema{AllOf: []*Schema{
		{Ref: "#/components/schemas/Base"},
		{Ref: "#/components/schemas/Extra"},
	}}
	r := NewResolver()

	resolved := r.ResolveAll(node, doc)

	// Members are resolved independently and carried forward as siblings.
	require.Len(t, resolved.AllOf, 2)
	assert.Equal(t, "object", resolved.AllOf[0].Type)
	assert.Contains(t, resolved.AllOf[0].Properties, "id")
	assert.Contains(t, resolved.AllOf[1].Properties, "note")
	assert.Nil(t, resolved.Properties, "members should not be merged into the parent")
}

func TestResolveAllDoesNotMutateInput(t *testing.T) {
	doc := loadTestDoc(t, `
components:
  schemas:
    Foo:
      type: string
`)
	node := &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"foo": {Ref: "#/components/schemas/Foo"},
		},
	}
	r := NewResolver()

	resolved := r.ResolveAll(node, doc)

	assert.True(t, node.Properties["foo"].IsRef(), "input schema must not be mutated")
	assert.False(t, resolved.Properties["foo"].IsRef())
	assert.Equal(t, Document{"components": map[string]any{
		"schemas": map[string]any{
			"Foo": map[string]any{"type": "string"},
		},
	}}, doc, "document must not be mutated")
}

func TestResolveReferenceArrayIndexPointer(t *testing.T) {
	doc := loadTestDoc(t, `
definitions:
  list:
    - type: boolean
    - type: string
`)
	r := NewResolver()

	resolved := r.ResolveReference(&Schema{Ref: "#/definitions/list/1"}, doc)

	require.NotNil(t, resolved)
	assert.Equal(t, "string", resolved.Type)
}

func TestResolveReferenceEscapedTokens(t *testing.T) {
	// ~1 unescapes to / and ~0 to ~ per RFC 6901.
	doc := loadTestDoc(t, `
paths:
  /pets:
    schema:
      type: number
`)
	r := NewResolver()

	resolved := r.ResolveReference(&Schema{Ref: "#/paths/~1pets/schema"}, doc)

	require.NotNil(t, resolved)
	assert.Equal(t, "number", resolved.Type)
}

func TestResolveReferenceDepthLimit(t *testing.T) {
	// Chain deeper than the configured limit degrades with a resource
	// warning instead of exhausting the stack.
	doc := loadTestDoc(t, `
components:
  schemas:
    S0: { $ref: '#/components/schemas/S1' }
    S1: { $ref: '#/components/schemas/S2' }
    S2: { $ref: '#/components/schemas/S3' }
    S3: { $ref: '#/components/schemas/S4' }
    S4: { type: string }
`)
	r := NewResolver(WithMaxRefDepth(2))

	resolved := r.ResolveReference(&Schema{Ref: "#/components/schemas/S0"}, doc)

	require.NotNil(t, resolved)
	assert.True(t, resolved.IsRef(), "over-deep chain should degrade to a reference stub")

	found := false
	for _, w := range r.Warnings() {
		if errors.Is(w, specerrors.ErrResourceLimit) {
			found = true
		}
	}
	assert.True(t, found, "a resource-limit warning should be recorded")
}

func TestLookupPointer(t *testing.T) {
	doc := loadTestDoc(t, `
a:
  b:
    - x
    - y
`)

	tests := []struct {
		name    string
		ref     string
		want    any
		wantOK  bool
		missing string
	}{
		{name: "nested map", ref: "#/a/b/0", want: "x", wantOK: true},
		{name: "second element", ref: "#/a/b/1", want: "y", wantOK: true},
		{name: "missing key", ref: "#/a/c", missing: "c"},
		{name: "index out of bounds", ref: "#/a/b/9", missing: "9"},
		{name: "non-numeric index", ref: "#/a/b/x", missing: "x"},
		{name: "malformed", ref: "nope"},
		{name: "missing fragment prefix", ref: "/a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, missing, ok := lookupPointer(doc, tt.ref)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			} else {
				assert.Equal(t, tt.missing, missing)
			}
		})
	}
}
