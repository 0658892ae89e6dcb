// Package oasynth provides reference resolution and example synthesis for
// OpenAPI Specification (OAS) schema documents.
//
// oasynth answers one question: given an OAS-flavored schema document full of
// internal $ref pointers, what would a representative request body for a given
// operation look like? It resolves pointers against the document, normalizes
// composite schemas, and synthesizes a structurally matching placeholder value
// suitable for pre-filling an editable request body in an API client.
//
// # Overview
//
// The library consists of two packages:
//
//   - synth: Resolve $ref pointers, normalize allOf/oneOf/anyOf compositions,
//     and synthesize example values from schemas
//   - specerrors: Structured error and warning types for programmatic
//     inspection via errors.Is and errors.As
//
// # Quick Start
//
// Load a document and build a request-body descriptor:
//
//	import "github.com/davrho/oasynth/synth"
//
//	doc, err := synth.LoadDocumentFile("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	rb := synth.RequestBodyAt(doc, "/pets", "post")
//	desc := synth.BuildRequestBody(rb, doc)
//	fmt.Println(desc.Example) // pretty-printed JSON placeholder
//
// Resolve a single reference:
//
//	r := synth.NewResolver()
//	schema := r.ResolveReference(&synth.Schema{Ref: "#/components/schemas/Pet"}, doc)
//
// Synthesize an example for a schema:
//
//	s := synth.NewSynthesizer()
//	value := s.Synthesize(schema)
//
// # Degradation Policy
//
// Past the document-loading boundary, no call in this library returns an
// error. Unresolvable pointers degrade to the unresolved reference node,
// unsynthesizable schemas degrade to nil, and the request-body builder
// substitutes a fixed fallback object at the top level. Failures are
// observable through the non-fatal warning channel (Resolver.Warnings) and
// through structured logging (synth.WithLogger).
//
// # Command Line and MCP
//
// The oasynth command exposes the engine as a CLI (resolve, example, body
// subcommands) and as an MCP (Model Context Protocol) server over stdio.
package oasynth
