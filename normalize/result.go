package normalize

import (
	"github.com/oas-emend/emendapi/internal/issues"
	"github.com/oas-emend/emendapi/internal/severity"
)

// Severity indicates the severity level of a normalization issue.
type Severity = severity.Severity

const (
	// SeverityInfo is an informational note about a normalization choice.
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning is a lossy or best-effort transformation.
	SeverityWarning = severity.SeverityWarning
	// SeverityCritical is a construct that could not be carried over.
	SeverityCritical = severity.SeverityCritical
)

// Issue is one recorded event during normalization: a dangling reference, a
// malformed operation, an unknown security scheme, or an informational note.
type Issue = issues.Issue

// Result carries the upgraded document plus every non-fatal event recorded
// while producing it. Only unrecognized-version is a hard failure (returned
// as an error instead); everything else accumulates here.
type Result struct {
	// SourceDialect is the grammar the input was classified as.
	SourceDialect Dialect
	// Issues contains every recorded event, in the order encountered.
	Issues []Issue
	// InfoCount, WarningCount, CriticalCount total the Issues by severity.
	InfoCount, WarningCount, CriticalCount int
}

// HasCriticalIssues reports whether any critical issues were recorded.
func (r *Result) HasCriticalIssues() bool {
	return r != nil && r.CriticalCount > 0
}

// HasWarnings reports whether any warning-level issues were recorded.
func (r *Result) HasWarnings() bool {
	return r != nil && r.WarningCount > 0
}

func (r *Result) record(i Issue) {
	r.Issues = append(r.Issues, i)
	switch i.Severity {
	case severity.SeverityInfo:
		r.InfoCount++
	case severity.SeverityWarning:
		r.WarningCount++
	case severity.SeverityCritical:
		r.CriticalCount++
	}
}

func (r *Result) danglingReference(path, ref string) {
	r.record(Issue{
		Path:     path,
		Message:  "dangling reference: " + ref,
		Severity: severity.SeverityWarning,
		Field:    "$ref",
		Value:    ref,
	})
}

func (r *Result) malformedOperation(ctx *issues.OperationContext, path, detail string) {
	r.record(Issue{
		Path:             path,
		Message:          "malformed operation: " + detail,
		Severity:         severity.SeverityCritical,
		OperationContext: ctx,
	})
}

func (r *Result) invalidStatusCode(ctx *issues.OperationContext, path, code string) {
	r.record(Issue{
		Path:             path,
		Field:            code,
		Message:          "response status code is not a valid code, wildcard pattern, or \"default\"",
		Severity:         severity.SeverityWarning,
		OperationContext: ctx,
	})
}

func (r *Result) unknownSecurityScheme(name, typ string) {
	r.record(Issue{
		Path:     issues.FormatPath("components", "securitySchemes", name),
		Message:  "unknown security scheme type: " + typ,
		Severity: severity.SeverityWarning,
		Field:    "type",
		Value:    typ,
	})
}
