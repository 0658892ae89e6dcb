// Package specerrors provides structured error types for oasynth.
//
// These error types enable programmatic inspection via errors.Is() and
// errors.As(). Most of them never surface as returned errors: past the
// document-loading boundary the engine degrades instead of failing, and these
// values appear only on the non-fatal warning channel (Resolver.Warnings).
//
// # Error Categories
//
//   - ParseError: YAML/JSON document parsing failures
//   - ReferenceError: $ref resolution failures — missing targets, malformed
//     pointers, circular reference chains
//   - ResourceLimitError: Resource exhaustion (recursion depth)
//   - SynthesisError: Schemas no example value can be synthesized for
//
// # Usage with errors.Is
//
//	for _, w := range resolver.Warnings() {
//	    if errors.Is(w, specerrors.ErrCircularReference) {
//	        // The document contains a reference cycle
//	    }
//	}
package specerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a document parsing failure.
	ErrParse = errors.New("parse error")

	// ErrReference indicates a reference resolution failure.
	ErrReference = errors.New("reference error")

	// ErrCircularReference indicates a circular $ref chain was detected.
	ErrCircularReference = errors.New("circular reference")

	// ErrMalformedPointer indicates a $ref value that is not pointer-shaped.
	ErrMalformedPointer = errors.New("malformed pointer")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrSynthesis indicates a schema no example could be synthesized for.
	ErrSynthesis = errors.New("synthesis error")
)

// ParseError represents a failure to parse a spec document.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ReferenceError represents a failure to resolve a $ref.
// This includes missing targets, malformed pointers, and circular chains.
type ReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// Segment is the pointer segment that was missing, if any
	Segment string
	// IsCircular is true if this error is due to a circular reference
	IsCircular bool
	// IsMalformed is true if the $ref value is not pointer-shaped
	IsMalformed bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.IsCircular {
		msg = "circular reference"
	} else if e.IsMalformed {
		msg = "malformed pointer"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Segment != "" {
		msg += fmt.Sprintf(" (missing segment: %s)", e.Segment)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrReference, and also ErrCircularReference or ErrMalformedPointer
// when the corresponding flags are set.
func (e *ReferenceError) Is(target error) bool {
	if target == ErrReference {
		return true
	}
	if target == ErrCircularReference && e.IsCircular {
		return true
	}
	if target == ErrMalformedPointer && e.IsMalformed {
		return true
	}
	return false
}

// ResourceLimitError represents a resource exhaustion condition.
// This occurs when resolution or synthesis exceeds configured limits.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "ref_depth", "synthesis_depth"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ResourceLimitError has no underlying cause.
func (e *ResourceLimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// SynthesisError represents a schema that no example value could be
// synthesized for: it has neither a recognized type nor declared properties.
type SynthesisError struct {
	// Path is the property path within the schema (e.g., "address.geo")
	Path string
	// Message describes why synthesis was not possible
	Message string
}

// Error returns a human-readable error message.
func (e *SynthesisError) Error() string {
	msg := "synthesis error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as SynthesisError has no underlying cause.
func (e *SynthesisError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *SynthesisError) Is(target error) bool {
	return target == ErrSynthesis
}
