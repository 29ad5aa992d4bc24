package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"employee-overlap-service/internal/domain"
)

// Marks an assignment that is still running at ingestion time.
const openEndedMarker = "NULL"

// ReadFile loads assignment records from a comma-delimited file.
func ReadFile(path string) ([]domain.Assignment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read assignments: open %q: %w", path, err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read assignments: %q: %w", path, err)
	}
	return records, nil
}

// Read parses records of the form "emp_id, project_id, date_from, date_to".
//
// Fields may carry surrounding whitespace; a date_to of NULL marks an
// ongoing assignment. There is no header row and blank lines are skipped.
// Record order is preserved because it pins employee enumeration for the
// pair search downstream. Any malformed record fails the whole read with a
// record-numbered error; partial data never reaches the core.
func Read(r io.Reader) ([]domain.Assignment, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 4
	cr.TrimLeadingSpace = true

	var out []domain.Assignment
	for recNo := 1; ; recNo++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", recNo, err)
		}

		empID := strings.TrimSpace(row[0])
		projectID := strings.TrimSpace(row[1])
		if empID == "" || projectID == "" {
			return nil, fmt.Errorf("record %d: empty employee or project id", recNo)
		}

		from, err := parseDate(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("record %d: date_from: %w", recNo, err)
		}

		rec := domain.Assignment{EmployeeID: empID, ProjectID: projectID, From: from}

		if rawTo := strings.TrimSpace(row[3]); rawTo != openEndedMarker {
			to, err := parseDate(rawTo)
			if err != nil {
				return nil, fmt.Errorf("record %d: date_to: %w", recNo, err)
			}
			rec.To = &to
		}

		out = append(out, rec)
	}

	return out, nil
}
