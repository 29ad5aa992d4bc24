package repositories

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// Every pooled connection would get its own empty in-memory database.
	db.SetMaxOpenConns(1)

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "assignments.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
	return path
}

func TestSeedAndListRoundTrip(t *testing.T) {
	db := openTestDB(t)

	seed := "143, 12, 2013-11-01, 2014-01-05\n" +
		"218, 10, 2012-05-16, NULL\n" +
		"143, 10, 2009-01-01, 2011-04-27\n"

	if err := SeedFromCSV(db, DialectSQLite, writeSeedFile(t, seed)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	repo := NewSQLAssignmentRepository(db)
	records, err := repo.ListAssignments(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("listed %d records, want 3", len(records))
	}

	// Ingestion order survives the round-trip.
	wantOrder := []string{"143/12", "218/10", "143/10"}
	for i, rec := range records {
		if got := rec.EmployeeID + "/" + rec.ProjectID; got != wantOrder[i] {
			t.Fatalf("records[%d] = %s, want %s", i, got, wantOrder[i])
		}
	}

	first := records[0]
	wantFrom := time.Date(2013, 11, 1, 0, 0, 0, 0, time.UTC)
	if !first.From.Equal(wantFrom) {
		t.Fatalf("From = %v, want %v", first.From, wantFrom)
	}
	if first.To == nil {
		t.Fatal("first record To is nil, want a date")
	}

	// NULL date_to round-trips as an open-ended assignment.
	if records[1].To != nil {
		t.Fatalf("open-ended To = %v, want nil", records[1].To)
	}
}

func TestSeedReplacesPreviousLoad(t *testing.T) {
	db := openTestDB(t)

	if err := SeedFromCSV(db, DialectSQLite, writeSeedFile(t, "143, 12, 2013-11-01, NULL\n")); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := SeedFromCSV(db, DialectSQLite, writeSeedFile(t, "218, 10, 2012-05-16, NULL\n")); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	repo := NewSQLAssignmentRepository(db)
	records, err := repo.ListAssignments(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("listed %d records, want 1 after reseed", len(records))
	}
	if records[0].EmployeeID != "218" {
		t.Fatalf("EmployeeID = %s, want 218", records[0].EmployeeID)
	}
}

func TestSeedFailsOnMalformedFile(t *testing.T) {
	db := openTestDB(t)

	err := SeedFromCSV(db, DialectSQLite, writeSeedFile(t, "143, 12, bogus, NULL\n"))
	if err == nil {
		t.Fatal("expected error for malformed seed file")
	}

	// A failed load must not leave partial data behind.
	repo := NewSQLAssignmentRepository(db)
	records, listErr := repo.ListAssignments(context.Background())
	if listErr != nil {
		t.Fatalf("list: %v", listErr)
	}
	if len(records) != 0 {
		t.Fatalf("listed %d records after failed seed, want 0", len(records))
	}
}
