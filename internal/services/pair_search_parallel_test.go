package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"employee-overlap-service/internal/domain"
)

func TestFindBestPairParallelMatchesSequentialOnDistinctMax(t *testing.T) {
	records := []domain.Assignment{
		assignment("E1", "P1", date(2021, 1, 1), date(2021, 1, 11)),
		assignment("E2", "P1", date(2021, 1, 1), date(2021, 1, 11)), // (E1,E2)=10
		assignment("E3", "P2", date(2021, 2, 1), date(2021, 3, 1)),
		assignment("E2", "P2", date(2021, 2, 1), date(2021, 3, 1)), // (E2,E3)=28
		assignment("E4", "P3", date(2021, 4, 1), date(2021, 4, 4)),
		assignment("E1", "P3", date(2021, 4, 1), date(2021, 4, 4)), // (E1,E4)=3
	}
	index := domain.BuildIndex(records, date(2022, 1, 1))

	sequential, err := FindBestPair(index)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, workers := range []int{1, 2, 3, 8} {
		parallel, err := FindBestPairParallel(context.Background(), index, workers)
		if err != nil {
			t.Fatalf("workers=%d: unexpected error: %v", workers, err)
		}
		if !reflect.DeepEqual(sequential, parallel) {
			t.Fatalf("workers=%d: parallel = %v, sequential = %v", workers, parallel, sequential)
		}
	}
}

func TestFindBestPairParallelTieBreakIsTotalOrder(t *testing.T) {
	// Insertion order EZ, EY, EX. (EZ,EY) and (EZ,EX) both total 10 days.
	// The sequential scan keeps the first-seen (EZ, EY); the parallel
	// reduction picks (EZ, EX) because its pair key orders lower.
	records := []domain.Assignment{
		assignment("EZ", "P1", date(2021, 1, 1), date(2021, 1, 11)),
		assignment("EY", "P1", date(2021, 1, 1), date(2021, 1, 11)),
		assignment("EX", "P2", date(2021, 2, 1), date(2021, 2, 11)),
		assignment("EZ", "P2", date(2021, 2, 1), date(2021, 2, 11)),
	}
	index := domain.BuildIndex(records, date(2022, 1, 1))

	sequential, err := FindBestPair(index)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sequential.EmployeeA != "EZ" || sequential.EmployeeB != "EY" {
		t.Fatalf("sequential winner = (%s, %s), want (EZ, EY)", sequential.EmployeeA, sequential.EmployeeB)
	}

	for _, workers := range []int{1, 2, 4} {
		parallel, err := FindBestPairParallel(context.Background(), index, workers)
		if err != nil {
			t.Fatalf("workers=%d: unexpected error: %v", workers, err)
		}
		if parallel.EmployeeA != "EZ" || parallel.EmployeeB != "EX" {
			t.Fatalf("workers=%d: winner = (%s, %s), want (EZ, EX)", workers, parallel.EmployeeA, parallel.EmployeeB)
		}
		if parallel.TotalDays != 10 {
			t.Fatalf("workers=%d: TotalDays = %d, want 10", workers, parallel.TotalDays)
		}
	}
}

func TestFindBestPairParallelNotEnoughEmployees(t *testing.T) {
	index := domain.BuildIndex(nil, date(2022, 1, 1))

	_, err := FindBestPairParallel(context.Background(), index, 4)
	if !errors.Is(err, ErrNotEnoughEmployees) {
		t.Fatalf("err = %v, want ErrNotEnoughEmployees", err)
	}
}

func TestFindBestPairParallelCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FindBestPairParallel(ctx, tiedIndex(), 2)
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
