package csvsource

import (
	"fmt"
	"time"

	"employee-overlap-service/internal/domain"
)

// Supported layouts, tried in order. The order is part of the ingestion
// contract: an ambiguous string such as "03/04/2020" matches the day-first
// layout before the month-first one and parses as 3 April.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"02-01-2006",
	"2/1/2006",
	"2-1-2006",
	"01-02-2006",
	"01/02/2006",
	"1/2/2006",
	"1-2-2006",
}

// ParseError reports a date string matching none of the supported layouts.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse date: %q matches no supported layout", e.Input)
}

// parseDate tries each supported layout in order and normalizes the first
// match to UTC midnight.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return domain.Midnight(t), nil
		}
	}
	return time.Time{}, &ParseError{Input: s}
}
