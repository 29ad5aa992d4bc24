package domain

import "time"

// A single raw employee-to-project record as produced by ingestion.
// To is nil while the assignment is still ongoing; the index builder
// resolves it against an explicit as-of instant.
type Assignment struct {
	EmployeeID string
	ProjectID  string
	From       time.Time
	To         *time.Time
}
