package synth

import (
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRequestBodyJSONPreferred(t *testing.T) {
	doc := loadTestDoc(t, `{}`)
	rb := &RequestBody{
		Content: map[string]*MediaType{
			"application/xml":  {Schema: &Schema{Type: "string"}},
			"application/json": {Schema: &Schema{Type: "boolean"}},
		},
	}

	desc := BuildRequestBody(rb, doc)

	require.NotNil(t, desc)
	assert.Equal(t, "application/json", desc.ContentType)
	assert.Equal(t, "false", desc.Example)
}

func TestBuildRequestBodyDeterministicFallbackContentType(t *testing.T) {
	doc := loadTestDoc(t, `{}`)
	rb := &RequestBody{
		Content: map[string]*MediaType{
			"text/plain":      {Schema: &Schema{Type: "boolean"}},
			"application/xml": {Schema: &Schema{Type: "boolean"}},
			"text/csv":        {Schema: &Schema{Type: "boolean"}},
		},
	}

	// Without application/json the lexicographically smallest entry wins,
	// reproducibly across repeated calls.
	for range 10 {
		desc := BuildRequestBody(rb, doc)
		require.NotNil(t, desc)
		assert.Equal(t, "application/xml", desc.ContentType)
	}
}

func TestBuildRequestBodyExplicitExample(t *testing.T) {
	doc := loadTestDoc(t, `{}`)

	t.Run("string example passes through verbatim", func(t *testing.T) {
		rb := &RequestBody{Content: map[string]*MediaType{
			"application/json": {
				Schema:  &Schema{Type: "object"},
				Example: `{"already": "formatted"}`,
			},
		}}
		desc := BuildRequestBody(rb, doc)
		require.NotNil(t, desc)
		assert.Equal(t, `{"already": "formatted"}`, desc.Example)
	})

	t.Run("structured example is pretty-printed", func(t *testing.T) {
		rb := &RequestBody{Content: map[string]*MediaType{
			"application/json": {Example: map[string]any{"k": "v"}},
		}}
		desc := BuildRequestBody(rb, doc)
		require.NotNil(t, desc)
		assert.JSONEq(t, `{"k": "v"}`, desc.Example)
		assert.Contains(t, desc.Example, "\n", "structured examples should be indented")
	})

	t.Run("explicit example wins over schema synthesis", func(t *testing.T) {
		rb := &RequestBody{Content: map[string]*MediaType{
			"application/json": {
				Schema:  &Schema{Type: "integer"},
				Example: map[string]any{"chosen": true},
			},
		}}
		desc := BuildRequestBody(rb, doc)
		require.NotNil(t, desc)
		assert.JSONEq(t, `{"chosen": true}`, desc.Example)
	})
}

func TestBuildRequestBodyResolvesSchema(t *testing.T) {
	doc := loadTestDoc(t, `
components:
  schemas:
    Pet:
      type: object
      properties:
        id:
          type: integer
        name:
          type: string
`)
	rb := &RequestBody{
		Required: true,
		Content: map[string]*MediaType{
			"application/json": {Schema: &Schema{Ref: "#/components/schemas/Pet"}},
		},
	}

	desc := BuildRequestBody(rb, doc)

	require.NotNil(t, desc)
	assert.True(t, desc.Required)
	require.NotNil(t, desc.Schema)
	assert.Equal(t, "object", desc.Schema.Type, "descriptor schema should be post-resolution")

	var example map[string]any
	require.NoError(t, gojson.Unmarshal([]byte(desc.Example), &example))
	assert.Len(t, example, 2)
	assert.Contains(t, example, "id")
	assert.Contains(t, example, "name")
}

func TestBuildRequestBodyFallbackObject(t *testing.T) {
	doc := loadTestDoc(t, `{}`)
	rb := &RequestBody{Content: map[string]*MediaType{
		// Untyped schema with no properties synthesizes nil; the builder
		// substitutes the fixed fallback object.
		"application/json": {Schema: &Schema{}},
	}}

	desc := BuildRequestBody(rb, doc)

	require.NotNil(t, desc)
	assert.JSONEq(t, `{"data": "example"}`, desc.Example)
}

func TestBuildRequestBodyEdgeCases(t *testing.T) {
	doc := loadTestDoc(t, `{}`)

	t.Run("nil request body", func(t *testing.T) {
		assert.Nil(t, BuildRequestBody(nil, doc))
	})

	t.Run("no content and not required", func(t *testing.T) {
		assert.Nil(t, BuildRequestBody(&RequestBody{}, doc))
	})

	t.Run("no content but required", func(t *testing.T) {
		desc := BuildRequestBody(&RequestBody{Required: true}, doc)
		require.NotNil(t, desc)
		assert.True(t, desc.Required)
		assert.JSONEq(t, `{"data": "example"}`, desc.Example)
	})

	t.Run("required defaults to false", func(t *testing.T) {
		rb := &RequestBody{Content: map[string]*MediaType{
			"application/json": {Schema: &Schema{Type: "boolean"}},
		}}
		desc := BuildRequestBody(rb, doc)
		require.NotNil(t, desc)
		assert.False(t, desc.Required)
	})
}

func TestRequestBodyFromValue(t *testing.T) {
	doc := loadTestDoc(t, `
required: true
content:
  application/json:
    schema:
      type: object
      properties:
        name: { type: string }
    example:
      name: inline
  text/plain:
    schema:
      type: string
`)

	rb := RequestBodyFromValue(map[string]any(doc))

	require.NotNil(t, rb)
	assert.True(t, rb.Required)
	require.Len(t, rb.Content, 2)

	jsonMedia := rb.Content["application/json"]
	require.NotNil(t, jsonMedia)
	require.NotNil(t, jsonMedia.Schema)
	assert.Equal(t, "object", jsonMedia.Schema.Type)
	assert.NotNil(t, jsonMedia.Example)

	assert.Nil(t, RequestBodyFromValue("not a map"))
	assert.Nil(t, RequestBodyFromValue(nil))
}

func TestRequestBodyAt(t *testing.T) {
	doc := loadTestDoc(t, `
paths:
  /pets:
    post:
      requestBody:
        required: true
        content:
          application/json:
            schema:
              $ref: '#/components/schemas/Pet'
components:
  schemas:
    Pet:
      type: object
      properties:
        name: { type: string }
`)

	t.Run("locates the operation requestBody", func(t *testing.T) {
		rb := RequestBodyAt(doc, "/pets", "POST")
		require.NotNil(t, rb)
		assert.True(t, rb.Required)
		require.Contains(t, rb.Content, "application/json")

		desc := BuildRequestBody(rb, doc)
		require.NotNil(t, desc)
		var example map[string]any
		require.NoError(t, gojson.Unmarshal([]byte(desc.Example), &example))
		assert.Equal(t, "John Doe", example["name"])
	})

	t.Run("missing operation", func(t *testing.T) {
		assert.Nil(t, RequestBodyAt(doc, "/pets", "get"))
		assert.Nil(t, RequestBodyAt(doc, "/missing", "post"))
		assert.Nil(t, RequestBodyAt(Document{}, "/pets", "post"))
	})
}
