package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"employee-overlap-service/internal/api/dto"
	"employee-overlap-service/internal/domain"
	"employee-overlap-service/internal/platform/obs"
	"employee-overlap-service/internal/ports"
	"employee-overlap-service/internal/services"
)

const (
	maxWorkers     = 32
	reportCacheTTL = 5 * time.Minute
)

// ReportHandler computes the best-pair report on demand.
// Cache is optional; a nil cache means every request rescans.
type ReportHandler struct {
	Repo  ports.AssignmentRepository
	Cache ports.ReportCache
}

// BestPair loads all assignments, builds the index as of the requested date
// and returns the employee pair with the longest total time on shared
// projects. With workers > 1 the scan runs on the parallel variant, whose
// tie-break is a total order rather than first-seen.
func (h *ReportHandler) BestPair(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.BestPairRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	asOf := domain.Midnight(time.Now().UTC())
	if req.AsOf != "" {
		parsed, err := time.Parse("2006-01-02", req.AsOf)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "as_of must be formatted YYYY-MM-DD")
			return
		}
		asOf = domain.Midnight(parsed)
	}

	if req.Workers < 0 || req.Workers > maxWorkers {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("workers must be between 0 and %d", maxWorkers))
		return
	}

	var err error
	defer obs.Time(r.Context(), "best_pair")(&err)

	records, err := h.Repo.ListAssignments(r.Context())
	if err != nil {
		log.Printf("list assignments failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	// The seed tool replaces the whole table, so record count plus as-of
	// date is a good enough dataset fingerprint for a short-lived entry.
	cacheKey := fmt.Sprintf("best-pair:%s:n%d:w%d", asOf.Format("2006-01-02"), len(records), req.Workers)

	if h.Cache != nil {
		cached, ok, cacheErr := h.Cache.Get(r.Context(), cacheKey)
		if cacheErr != nil {
			log.Printf("report cache get failed: %v", cacheErr)
		} else if ok {
			writeJSON(w, r, http.StatusOK, toBestPairResponse(cached))
			return
		}
	}

	index := domain.BuildIndex(records, asOf)

	var report *domain.PairReport
	if req.Workers > 1 {
		report, err = services.FindBestPairParallel(r.Context(), index, req.Workers)
	} else {
		report, err = services.FindBestPair(index)
	}
	if err != nil {
		if errors.Is(err, services.ErrNotEnoughEmployees) {
			writeError(w, r, http.StatusUnprocessableEntity, "need at least two employees")
			return
		}
		log.Printf("best pair scan failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if h.Cache != nil {
		if cacheErr := h.Cache.Put(r.Context(), cacheKey, report, reportCacheTTL); cacheErr != nil {
			log.Printf("report cache put failed: %v", cacheErr)
		}
	}

	writeJSON(w, r, http.StatusOK, toBestPairResponse(report))
}

func toBestPairResponse(report *domain.PairReport) dto.BestPairResponse {
	res := dto.BestPairResponse{
		EmployeeA: report.EmployeeA,
		EmployeeB: report.EmployeeB,
		TotalDays: report.TotalDays,
		Projects:  make([]dto.ProjectOverlapResponse, 0, len(report.Projects)),
	}
	for _, p := range report.Projects {
		res.Projects = append(res.Projects, dto.ProjectOverlapResponse{
			ProjectID: p.ProjectID,
			Days:      p.Days,
		})
	}
	return res
}
