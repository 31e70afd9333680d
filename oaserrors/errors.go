// Package oaserrors provides the structured error taxonomy for convert and
// downgrade. Only unrecognized-version is a hard failure; the other four
// categories are recorded as non-fatal diagnostics (see the normalize and
// downgrade packages' Result types) but are still exposed here as proper
// error types so a caller who does receive one, e.g. from a lower-level
// helper, can use errors.Is/errors.As.
package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrUnrecognizedVersion indicates the top-level document could not be
	// classified as Swagger 2.0, OpenAPI 3.0, OpenAPI 3.1, or emended.
	// This is the only category that fails convert/downgrade outright.
	ErrUnrecognizedVersion = errors.New("unrecognized version")

	// ErrDanglingReference indicates a $ref pointed outside the recognized
	// prefixes or at a missing entry.
	ErrDanglingReference = errors.New("dangling reference")

	// ErrMalformedOperation indicates more than one body-shaped parameter
	// was present in a Swagger 2.0 operation.
	ErrMalformedOperation = errors.New("malformed operation")

	// ErrUnsupportedConstruct indicates a construct the target grammar
	// cannot express.
	ErrUnsupportedConstruct = errors.New("unsupported construct")

	// ErrUnknownSecurityScheme indicates a security scheme type or OAuth2
	// flow name this module does not recognize.
	ErrUnknownSecurityScheme = errors.New("unknown security scheme")
)

// UnrecognizedVersionError is returned by convert/downgrade when the input
// cannot be classified.
type UnrecognizedVersionError struct {
	// Detail describes what was found instead of a recognizable version tag.
	Detail string
}

func (e *UnrecognizedVersionError) Error() string {
	msg := "unrecognized version"
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *UnrecognizedVersionError) Is(target error) bool {
	return target == ErrUnrecognizedVersion
}

// DanglingReferenceError records a $ref that could not be resolved within
// the document.
type DanglingReferenceError struct {
	Path string
	Ref  string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("dangling reference at %s: %s", e.Path, e.Ref)
}

func (e *DanglingReferenceError) Is(target error) bool {
	return target == ErrDanglingReference
}

// MalformedOperationError records an operation dropped because it declared
// more than one body-shaped parameter.
type MalformedOperationError struct {
	Path   string
	Method string
	Detail string
}

func (e *MalformedOperationError) Error() string {
	return fmt.Sprintf("malformed operation %s %s: %s", e.Method, e.Path, e.Detail)
}

func (e *MalformedOperationError) Is(target error) bool {
	return target == ErrMalformedOperation
}

// UnsupportedConstructError records a construct the target grammar could
// not express faithfully; downgrade proceeds and annotates with an "x-"
// extension rather than failing.
type UnsupportedConstructError struct {
	Path   string
	Detail string
}

func (e *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("unsupported construct at %s: %s", e.Path, e.Detail)
}

func (e *UnsupportedConstructError) Is(target error) bool {
	return target == ErrUnsupportedConstruct
}

// UnknownSecuritySchemeError records a security scheme dropped because its
// type or flow name was not recognized.
type UnknownSecuritySchemeError struct {
	Name string
	Type string
}

func (e *UnknownSecuritySchemeError) Error() string {
	return fmt.Sprintf("unknown security scheme %q of type %q", e.Name, e.Type)
}

func (e *UnknownSecuritySchemeError) Is(target error) bool {
	return target == ErrUnknownSecurityScheme
}
