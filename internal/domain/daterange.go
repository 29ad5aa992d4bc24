package domain

import "time"

const day = 24 * time.Hour

// Calendar-day interval [Start, End] with both bounds at UTC midnight.
// End may have been resolved from an ongoing assignment at index-build time,
// so overlap results involving such a range depend on the as-of instant the
// builder was given. Nothing enforces Start <= End; Overlap tolerates
// inverted ranges.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange normalizes both bounds to UTC midnight.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: Midnight(start), End: Midnight(end)}
}

// Midnight returns 00:00 UTC of t's calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Overlap returns the number of whole days the two ranges share.
// The count is exclusive (identical single-day ranges overlap 0 days, a
// "nights of overlap" convention) and clamps at zero, so disjoint or
// inverted ranges never yield a negative result. Symmetric in its operands.
func (r DateRange) Overlap(o DateRange) int {
	start := r.Start
	if o.Start.After(start) {
		start = o.Start
	}

	end := r.End
	if o.End.Before(end) {
		end = o.End
	}

	days := int(end.Sub(start) / day)
	if days < 0 {
		return 0
	}
	return days
}
