package handlers

import (
	"log"
	"net/http"

	"employee-overlap-service/internal/api/dto"
	"employee-overlap-service/internal/ports"
)

// AssignmentHandler exposes read-only assignment retrieval endpoints.
type AssignmentHandler struct {
	Repo ports.AssignmentRepository
}

func (h *AssignmentHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	records, err := h.Repo.ListAssignments(r.Context())
	if err != nil {
		log.Printf("list assignments failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListAssignmentsResponse{
		Assignments: make([]dto.AssignmentResponse, 0, len(records)),
	}
	for _, rec := range records {
		item := dto.AssignmentResponse{
			EmployeeID: rec.EmployeeID,
			ProjectID:  rec.ProjectID,
			DateFrom:   rec.From.Format("2006-01-02"),
		}
		if rec.To != nil {
			to := rec.To.Format("2006-01-02")
			item.DateTo = &to
		}
		res.Assignments = append(res.Assignments, item)
	}

	writeJSON(w, r, http.StatusOK, res)
}
