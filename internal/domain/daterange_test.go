package domain

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRangeOverlap(t *testing.T) {
	tests := []struct {
		name string
		r1   DateRange
		r2   DateRange
		want int
	}{
		{
			name: "partial overlap",
			r1:   DateRange{Start: date(2021, 1, 1), End: date(2021, 1, 31)},
			r2:   DateRange{Start: date(2021, 1, 15), End: date(2021, 2, 15)},
			want: 16,
		},
		{
			name: "disjoint",
			r1:   DateRange{Start: date(2021, 1, 1), End: date(2021, 1, 10)},
			r2:   DateRange{Start: date(2021, 2, 1), End: date(2021, 2, 10)},
			want: 0,
		},
		{
			name: "contained",
			r1:   DateRange{Start: date(2021, 1, 1), End: date(2021, 12, 31)},
			r2:   DateRange{Start: date(2021, 6, 1), End: date(2021, 6, 11)},
			want: 10,
		},
		{
			name: "single day ranges collapse to zero",
			r1:   DateRange{Start: date(2021, 3, 5), End: date(2021, 3, 5)},
			r2:   DateRange{Start: date(2021, 3, 5), End: date(2021, 3, 5)},
			want: 0,
		},
		{
			name: "inverted range clamps to zero",
			r1:   DateRange{Start: date(2021, 5, 10), End: date(2021, 5, 1)},
			r2:   DateRange{Start: date(2021, 5, 1), End: date(2021, 5, 10)},
			want: 0,
		},
		{
			name: "touching endpoints",
			r1:   DateRange{Start: date(2021, 1, 1), End: date(2021, 1, 10)},
			r2:   DateRange{Start: date(2021, 1, 10), End: date(2021, 1, 20)},
			want: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r1.Overlap(tc.r2); got != tc.want {
				t.Fatalf("Overlap = %d, want %d", got, tc.want)
			}
			// Symmetry holds for every pair.
			if got := tc.r2.Overlap(tc.r1); got != tc.want {
				t.Fatalf("reversed Overlap = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDateRangeOverlapSelf(t *testing.T) {
	r := DateRange{Start: date(2021, 1, 1), End: date(2021, 1, 31)}
	if got := r.Overlap(r); got != 30 {
		t.Fatalf("self Overlap = %d, want 30", got)
	}
}

func TestNewDateRangeNormalizes(t *testing.T) {
	loc := time.FixedZone("plus2", 2*60*60)
	r := NewDateRange(
		time.Date(2021, 1, 1, 15, 30, 0, 0, loc),
		time.Date(2021, 1, 2, 8, 0, 0, 0, loc),
	)

	if !r.Start.Equal(date(2021, 1, 1)) {
		t.Fatalf("Start = %v, want 2021-01-01 UTC midnight", r.Start)
	}
	if !r.End.Equal(date(2021, 1, 2)) {
		t.Fatalf("End = %v, want 2021-01-02 UTC midnight", r.End)
	}
}
