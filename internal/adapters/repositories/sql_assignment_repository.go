package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"employee-overlap-service/internal/domain"
)

// Layout for date columns. Dates are stored as TEXT so the same queries
// work against both the sqlite and pgx stdlib drivers.
const dateColumnLayout = "2006-01-02"

// SQL-backed implementation of the AssignmentRepository port.
type SQLAssignmentRepository struct{ DB *sql.DB }

func NewSQLAssignmentRepository(db *sql.DB) *SQLAssignmentRepository {
	return &SQLAssignmentRepository{DB: db}
}

// Return all assignment records in ingestion order.
func (s *SQLAssignmentRepository) ListAssignments(ctx context.Context) ([]domain.Assignment, error) {
	if s.DB == nil {
		return nil, errors.New("assignment repository: DB is nil")
	}

	query := `
	SELECT
		emp_id,
		project_id,
		date_from,
		date_to
	FROM assignments
	ORDER BY seq;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list assignments: query assignments table: %w", err)
	}
	defer rows.Close()

	assignments := make([]domain.Assignment, 0, 64)
	for rows.Next() {
		var (
			empID     string
			projectID string
			rawFrom   string
			rawTo     sql.NullString
		)
		if err := rows.Scan(&empID, &projectID, &rawFrom, &rawTo); err != nil {
			return nil, fmt.Errorf("list assignments: scan row: %w", err)
		}

		from, err := time.Parse(dateColumnLayout, rawFrom)
		if err != nil {
			return nil, fmt.Errorf("list assignments: date_from for %s/%s: %w", empID, projectID, err)
		}

		rec := domain.Assignment{
			EmployeeID: empID,
			ProjectID:  projectID,
			From:       domain.Midnight(from),
		}

		if rawTo.Valid {
			to, err := time.Parse(dateColumnLayout, rawTo.String)
			if err != nil {
				return nil, fmt.Errorf("list assignments: date_to for %s/%s: %w", empID, projectID, err)
			}
			t := domain.Midnight(to)
			rec.To = &t
		}

		assignments = append(assignments, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list assignments: row iteration: %w", err)
	}

	return assignments, nil
}
