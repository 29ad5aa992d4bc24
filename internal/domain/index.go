package domain

import "time"

// Read-only mapping employee -> project -> DateRange.
//
// Employee iteration order is pinned to first insertion, which makes pair
// enumeration (and therefore the first-seen tie-break downstream)
// reproducible for a given record sequence. The index is built once and
// never mutated afterwards; concurrent readers need no locking.
type ProjectIndex struct {
	order    []string
	projects map[string]map[string]DateRange
}

// BuildIndex folds raw assignment records into a ProjectIndex.
//
// Records with a nil To resolve to asOf (truncated to UTC midnight), so the
// caller controls what "today" means and the result is reproducible in
// tests. Duplicate (employee, project) records follow a last-write-wins
// policy: the later record's range replaces the earlier one. This is
// deliberate ingestion behavior, not an accident of map insertion.
func BuildIndex(records []Assignment, asOf time.Time) *ProjectIndex {
	idx := &ProjectIndex{projects: make(map[string]map[string]DateRange)}
	today := Midnight(asOf)

	for _, rec := range records {
		end := today
		if rec.To != nil {
			end = Midnight(*rec.To)
		}

		byProject, ok := idx.projects[rec.EmployeeID]
		if !ok {
			byProject = make(map[string]DateRange)
			idx.projects[rec.EmployeeID] = byProject
			idx.order = append(idx.order, rec.EmployeeID)
		}
		byProject[rec.ProjectID] = DateRange{Start: Midnight(rec.From), End: end}
	}

	return idx
}

// Employees returns ids in first-insertion order.
// Callers must not modify the returned slice.
func (x *ProjectIndex) Employees() []string { return x.order }

// Projects returns one employee's project ranges, nil for unknown ids.
// Callers must treat the returned map as read-only.
func (x *ProjectIndex) Projects(employeeID string) map[string]DateRange {
	return x.projects[employeeID]
}

// Len returns the number of distinct employees.
func (x *ProjectIndex) Len() int { return len(x.order) }
