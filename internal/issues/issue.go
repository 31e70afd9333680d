// Package issues provides a unified diagnostic type for the normalizer,
// upgrader, and downgrader.
package issues

import (
	"fmt"

	"github.com/oas-emend/emendapi/internal/severity"
)

// Issue represents a single non-fatal event recorded during convert or
// downgrade (§7 of the design).
type Issue struct {
	// Path is the JSON path to the affected node (e.g. "paths./pets.get.responses").
	Path string
	// Message is a human-readable description of the issue.
	Message string
	// Severity indicates how serious the issue is.
	Severity severity.Severity
	// Field is the specific field name that has the issue, if applicable.
	Field string
	// Value is the problematic value, if useful to report.
	Value any
	// Context provides additional detail, e.g. what fallback was applied.
	Context string
	// OperationContext identifies the operation the issue was raised in,
	// when applicable. Nil for document- or component-level issues.
	OperationContext *OperationContext
}

// String returns a formatted representation of the issue, using "✗" for
// Error/Critical severity, "⚠" for Warning, and "ℹ" for Info.
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	pathWithContext := i.Path
	if i.OperationContext != nil && !i.OperationContext.IsEmpty() {
		pathWithContext = fmt.Sprintf("%s %s", i.Path, i.OperationContext.String())
	}

	result := fmt.Sprintf("%s %s: %s", symbol, pathWithContext, i.Message)
	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}
	return result
}
