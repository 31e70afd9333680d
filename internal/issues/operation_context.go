// Package issues provides a unified diagnostic type for the normalizer,
// upgrader, and downgrader.
package issues

import "fmt"

// OperationContext identifies the operation an Issue was raised while
// converting, so a "malformed operation" or "dangling reference" diagnostic
// can be traced back to a specific method+path.
type OperationContext struct {
	// Method is the HTTP method (get, post, ...); empty for path-level issues.
	Method string
	// Path is the API path pattern (e.g. "/pets/{id}") or webhook name.
	Path string
	// OperationID is the operationId if defined.
	OperationID string
}

// String returns a formatted representation, or "" if the context carries
// no information.
func (c OperationContext) String() string {
	if c.IsEmpty() {
		return ""
	}
	if c.OperationID != "" {
		return fmt.Sprintf("(operationId: %s)", c.OperationID)
	}
	if c.Method != "" {
		return fmt.Sprintf("(%s %s)", c.Method, c.Path)
	}
	return fmt.Sprintf("(path: %s)", c.Path)
}

// IsEmpty returns true if the context has no meaningful information.
func (c OperationContext) IsEmpty() bool {
	return c.Method == "" && c.Path == "" && c.OperationID == ""
}
