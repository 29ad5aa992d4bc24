package domain

// Overlap contribution of a single project shared by the winning pair.
type ProjectOverlap struct {
	ProjectID string
	Days      int
}

// The employee pair with the longest total time on shared projects, plus
// the per-project breakdown (positive overlaps only, sorted by project id).
// It is immutable result data and contains no behavior.
type PairReport struct {
	EmployeeA string
	EmployeeB string
	TotalDays int
	Projects  []ProjectOverlap
}
