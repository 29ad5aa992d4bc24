package services

import (
	"context"
	"fmt"
	"sync"

	"employee-overlap-service/internal/domain"
)

type pairScanResult struct {
	a     string
	b     string
	total int
}

// FindBestPairParallel shards the pair space across a bounded pool of
// workers and reduces their local bests into a single winner.
//
// The sequential first-seen tie-break is not order-independent, so the
// reduction uses a total order instead: a greater total wins, and equal
// totals fall back to the smaller canonical pair key. Given the same index
// the result does not depend on scheduling, though it may differ from
// FindBestPair when totals tie. Workers share the index read-only.
func FindBestPairParallel(ctx context.Context, index *domain.ProjectIndex, workers int) (*domain.PairReport, error) {
	employees := index.Employees()
	if len(employees) < 2 {
		return nil, ErrNotEnoughEmployees
	}

	if workers < 1 {
		workers = 1
	}
	if workers > len(employees)-1 {
		workers = len(employees) - 1
	}

	resultsCh := make(chan pairScanResult, workers)
	var wg sync.WaitGroup

	// Worker w owns outer rows w, w+workers, ... Row lengths shrink as the
	// outer index grows, so striding balances the load better than
	// contiguous blocks.
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()

			local := pairScanResult{total: -1}
			for i := start; i < len(employees)-1; i += workers {
				if ctx.Err() != nil {
					return
				}

				a := employees[i]
				projectsA := index.Projects(a)
				for j := i + 1; j < len(employees); j++ {
					b := employees[j]
					total := CommonDuration(projectsA, index.Projects(b))
					if better(total, a, b, local) {
						local = pairScanResult{a: a, b: b, total: total}
					}
				}
			}

			if local.total >= 0 {
				resultsCh <- local
			}
		}(w)
	}

	wg.Wait()
	close(resultsCh)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pair search: scan canceled: %w", err)
	}

	best := pairScanResult{total: -1}
	for res := range resultsCh {
		if better(res.total, res.a, res.b, best) {
			best = res
		}
	}

	return buildReport(index, best.a, best.b, best.total), nil
}

// better reports whether the candidate pair beats cur under the total order
// used by the parallel reduction: greater total first, then the smaller
// canonical (a, b) key.
func better(total int, a, b string, cur pairScanResult) bool {
	if total != cur.total {
		return total > cur.total
	}
	if a != cur.a {
		return a < cur.a
	}
	return b < cur.b
}
