package services

import (
	"errors"
	"slices"
	"strings"

	"employee-overlap-service/internal/domain"
)

// ErrNotEnoughEmployees is returned when the index holds fewer than two
// employees and no pair can be formed.
var ErrNotEnoughEmployees = errors.New("pair search: need at least two employees")

// FindBestPair scans every unordered employee pair exactly once and returns
// the pair with the greatest total duration across shared projects.
//
// Enumeration follows the index's first-insertion order, and only a strictly
// greater total replaces the current best, so among equal totals the
// first-seen pair wins. The best is seeded with the first enumerated pair:
// a dataset where no pair overlaps at all still reports that pair with a
// total of zero.
func FindBestPair(index *domain.ProjectIndex) (*domain.PairReport, error) {
	employees := index.Employees()
	if len(employees) < 2 {
		return nil, ErrNotEnoughEmployees
	}

	var bestA, bestB string
	best := -1

	for i := 0; i < len(employees)-1; i++ {
		a := employees[i]
		projectsA := index.Projects(a)

		for j := i + 1; j < len(employees); j++ {
			b := employees[j]
			total := CommonDuration(projectsA, index.Projects(b))

			// Strictly greater only: an equal total never displaces the
			// current best under the pinned enumeration order.
			if total > best {
				bestA, bestB = a, b
				best = total
			}
		}
	}

	return buildReport(index, bestA, bestB, best), nil
}

// buildReport recomputes the winner's per-project breakdown, keeping only
// positive overlaps, sorted by project id for stable output.
func buildReport(index *domain.ProjectIndex, a, b string, total int) *domain.PairReport {
	projectsA := index.Projects(a)
	projectsB := index.Projects(b)
	if len(projectsB) < len(projectsA) {
		projectsA, projectsB = projectsB, projectsA
	}

	overlaps := make([]domain.ProjectOverlap, 0, len(projectsA))
	for projectID, ra := range projectsA {
		rb, ok := projectsB[projectID]
		if !ok {
			continue
		}
		if days := ra.Overlap(rb); days > 0 {
			overlaps = append(overlaps, domain.ProjectOverlap{ProjectID: projectID, Days: days})
		}
	}

	slices.SortFunc(overlaps, func(x, y domain.ProjectOverlap) int {
		return strings.Compare(x.ProjectID, y.ProjectID)
	})

	return &domain.PairReport{
		EmployeeA: a,
		EmployeeB: b,
		TotalDays: total,
		Projects:  overlaps,
	}
}
