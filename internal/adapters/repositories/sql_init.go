package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"employee-overlap-service/internal/adapters/csvsource"
)

// Dialect selects the placeholder style of the underlying driver.
// database/sql does not normalize placeholders and the sqlite and pgx
// drivers disagree.
type Dialect int

const (
	DialectSQLite   Dialect = iota // ? placeholders
	DialectPostgres                // $1 placeholders
)

// Initialize the assignments schema. Idempotent; the DDL is portable
// across sqlite and postgres.
//
// Rows keep every raw record in file order (seq): duplicate
// (emp_id, project_id) records are stored as-is, and the last-write-wins
// policy is applied when the index is built, not here.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS assignments (
		seq INTEGER PRIMARY KEY,
		emp_id TEXT NOT NULL,
		project_id TEXT NOT NULL,
		date_from TEXT NOT NULL,
		date_to TEXT
	);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("init schema: create assignments table: %w", err)
	}

	return nil
}

// Populate the assignments table from a delimited file, replacing whatever
// was there before. The whole load runs in one transaction.
func SeedFromCSV(db *sql.DB, dialect Dialect, csvPath string) error {
	if db == nil {
		return errors.New("seed assignments: DB is nil")
	}

	records, err := csvsource.ReadFile(csvPath)
	if err != nil {
		return fmt.Errorf("seed assignments: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed assignments: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM assignments;`); err != nil {
		return fmt.Errorf("seed assignments: clear table: %w", err)
	}

	query := `
	INSERT INTO assignments (
		seq,
		emp_id,
		project_id,
		date_from,
		date_to
	)
	VALUES (?, ?, ?, ?, ?);
	`
	if dialect == DialectPostgres {
		query = `
	INSERT INTO assignments (
		seq,
		emp_id,
		project_id,
		date_from,
		date_to
	)
	VALUES ($1, $2, $3, $4, $5);
	`
	}

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed assignments: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		var to sql.NullString
		if rec.To != nil {
			to = sql.NullString{String: rec.To.Format(dateColumnLayout), Valid: true}
		}

		_, err := stmt.Exec(i+1, rec.EmployeeID, rec.ProjectID, rec.From.Format(dateColumnLayout), to)
		if err != nil {
			return fmt.Errorf("seed assignments: insert record %d (%s/%s): %w", i+1, rec.EmployeeID, rec.ProjectID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed assignments: commit tx: %w", err)
	}

	return nil
}
