package emendapi

import "fmt"

// StrictModeError is returned by Convert or Downgrade when WithStrict(true)
// is set and at least one issue was recorded, regardless of severity.
type StrictModeError struct {
	IssueCount int
}

func (e *StrictModeError) Error() string {
	return fmt.Sprintf("emendapi: strict mode: %d issue(s) recorded", e.IssueCount)
}
