// Package synth resolves $ref pointers in OpenAPI-style schema documents and
// synthesizes representative example values from the resolved schemas.
//
// The package is organized around four small components:
//
//   - Resolver: resolves JSON-pointer references ("#/components/schemas/Pet")
//     against a Document, transitively and with cycle protection
//   - Format and property-name heuristics: map declared string formats and
//     property-name substrings to representative literal values
//   - Synthesizer: recursively walks a resolved schema and produces a
//     structurally matching native Go value
//   - BuildRequestBody: the top-level entry point that selects a content type
//     from a request body, resolves its schema, and produces a
//     RequestBodyDescriptor with a pretty-printed example
//
// # Degradation Policy
//
// Nothing in this package returns an error past the LoadDocument boundary.
// An unresolvable pointer degrades to the unresolved reference node, which
// the synthesizer treats as opaque; an unsynthesizable schema degrades to
// nil; the request-body builder substitutes a fixed fallback object at the
// top level. Failures are recorded on Resolver.Warnings and reported through
// the configured Logger.
//
// # Concurrency
//
// A Document is read-only for the duration of a pass and is passed explicitly
// to every call, so independent documents can be processed concurrently. A
// Resolver carries per-pass cycle state and must not be shared between
// concurrent passes; they are cheap to construct per pass.
package synth
