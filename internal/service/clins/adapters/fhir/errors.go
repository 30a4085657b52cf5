package fhir

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDocumentType reports a document-type selector outside the three
// supported flows.
var ErrUnknownDocumentType = errors.New("unknown document type")

// ValidationFailure carries one or more field-level problems found while
// validating an input document. The full list is surfaced to the caller, not
// just the first entry.
type ValidationFailure struct {
	Problems []string
}

func (e *ValidationFailure) Error() string {
	return "document validation failed: " + strings.Join(e.Problems, "; ")
}

// UnsupportedFormatError reports a serialization format outside {json, xml}.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported serialization format %q, expected %q or %q", e.Format, FormatJSON, FormatXML)
}

// SerializationFailure wraps an unexpected structural problem while rendering
// a bundle. It should not occur for bundles produced by the assembler; when
// it does it signals an upstream invariant violation.
type SerializationFailure struct {
	Err error
}

func (e *SerializationFailure) Error() string {
	return "bundle serialization failed: " + e.Err.Error()
}

func (e *SerializationFailure) Unwrap() error { return e.Err }
