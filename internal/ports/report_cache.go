package ports

import (
	"context"
	"time"

	"employee-overlap-service/internal/domain"
)

// Contract for short-lived storage of computed pair reports.
// This is response caching, not a record store: entries expire and a cold
// cache only costs a rescan.
type ReportCache interface {
	// Return the cached report for key; ok is false on a miss.
	Get(ctx context.Context, key string) (report *domain.PairReport, ok bool, err error)

	// Store report under key for at most ttl.
	Put(ctx context.Context, key string, report *domain.PairReport, ttl time.Duration) error
}
