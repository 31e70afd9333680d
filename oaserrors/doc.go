// Package oaserrors provides structured error types for convert and
// downgrade.
//
// Import path: github.com/oas-emend/emendapi/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and
// [errors.As], letting callers distinguish between the five diagnostic
// categories a normalize or downgrade pass can raise.
//
// # Error Types
//
//   - [UnrecognizedVersionError]: the input could not be classified as
//     Swagger 2.0, OpenAPI 3.0, OpenAPI 3.1, or emended. Fatal.
//   - [DanglingReferenceError]: a $ref pointed outside the recognized
//     prefixes or at a missing entry. Non-fatal, recorded.
//   - [MalformedOperationError]: an operation declared more than one
//     body-shaped parameter. Fatal for that operation only.
//   - [UnsupportedConstructError]: a construct the target grammar cannot
//     express. Non-fatal; downgrade annotates with an "x-" extension.
//   - [UnknownSecuritySchemeError]: a security scheme type or OAuth2 flow
//     name this module does not recognize. Non-fatal, dropped.
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel for use with errors.Is():
// [ErrUnrecognizedVersion], [ErrDanglingReference], [ErrMalformedOperation],
// [ErrUnsupportedConstruct], [ErrUnknownSecurityScheme].
//
// # Usage
//
//	doc, result, err := emendapi.Convert(input)
//	if errors.Is(err, oaserrors.ErrUnrecognizedVersion) {
//	    // fatal: caller must inspect the input themselves
//	}
//	for _, issue := range result.Issues {
//	    // non-fatal: the document was still produced; each issue carries
//	    // a Path, Message and Severity, not an error value
//	}
package oaserrors
