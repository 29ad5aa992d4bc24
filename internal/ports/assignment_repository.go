package ports

import (
	"context"

	"employee-overlap-service/internal/domain"
)

// Port: a boundary for retrieving assignment records from a data source.
type AssignmentRepository interface {
	// Return all assignment records in their original ingestion order.
	// Order matters: it pins employee enumeration for the pair search.
	ListAssignments(ctx context.Context) ([]domain.Assignment, error)
}
