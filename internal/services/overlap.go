package services

import "employee-overlap-service/internal/domain"

// CommonDuration sums the day overlaps of every project present in both
// mappings. Projects unique to one side contribute nothing.
//
// Pure and symmetric in its arguments. It iterates the smaller mapping, so
// each call costs one hash lookup per key of the smaller side.
func CommonDuration(a, b map[string]domain.DateRange) int {
	if len(b) < len(a) {
		a, b = b, a
	}

	total := 0
	for projectID, ra := range a {
		if rb, ok := b[projectID]; ok {
			total += ra.Overlap(rb)
		}
	}

	return total
}
