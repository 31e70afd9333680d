package downgrade

import (
	"github.com/oas-emend/emendapi/internal/issues"
	"github.com/oas-emend/emendapi/internal/severity"
)

// Severity re-exports the shared severity levels so callers of this package
// never need to import internal/severity directly.
type Severity = severity.Severity

const (
	SeverityInfo     = severity.SeverityInfo
	SeverityWarning  = severity.SeverityWarning
	SeverityCritical = severity.SeverityCritical
)

// Issue is a single diagnostic raised while downgrading a document.
type Issue = issues.Issue

// Result accumulates the diagnostics raised while downgrading one document,
// mirroring normalize.Result's shape for the opposite direction.
type Result struct {
	Target TargetVersion

	Issues        []Issue
	InfoCount     int
	WarningCount  int
	CriticalCount int
}

// HasCriticalIssues reports whether anything in the source document could
// not be expressed in the target grammar at all.
func (r *Result) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings reports whether any lossy-but-representable construct was
// recorded while downgrading.
func (r *Result) HasWarnings() bool {
	return r.WarningCount > 0
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

func (r *Result) lossyTuple(path string) {
	r.record(Issue{
		Path:     path,
		Message:  "tuple re-expressed as a bounded array; positional item typing is lost",
		Severity: severity.SeverityWarning,
		Context:  "target grammar has no prefixItems; items becomes oneOf over the original slot schemas",
	})
}

func (r *Result) splitOAuthFlow(path, name string) {
	r.record(Issue{
		Path:     path,
		Field:    name,
		Message:  "oauth2 security scheme with multiple flows split into one scheme per flow",
		Severity: severity.SeverityInfo,
		Context:  "2.0 securityDefinitions carries one flow per scheme entry",
	})
}

func (r *Result) unrepresentableConstruct(path, detail string) {
	r.record(Issue{
		Path:     path,
		Message:  "construct cannot be expressed in the target grammar",
		Severity: severity.SeverityCritical,
		Context:  detail,
	})
}
