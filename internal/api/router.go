package api

import (
	"net/http"

	"employee-overlap-service/internal/api/handlers"
	"employee-overlap-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// cache may be nil, which disables report caching.
func NewRouter(repo ports.AssignmentRepository, cache ports.ReportCache) http.Handler {
	mux := http.NewServeMux()

	assignmentHandler := &handlers.AssignmentHandler{Repo: repo}
	reportHandler := &handlers.ReportHandler{Repo: repo, Cache: cache}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/assignments", assignmentHandler.List)
	mux.HandleFunc("/reports/best-pair", reportHandler.BestPair)

	return requestIDMiddleware(loggingMiddleware(mux))
}
