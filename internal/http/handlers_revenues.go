package http

import (
	"errors"
	"log/slog"
	"net/http"

	"atelie/internal/ledger"
)

// handleListRevenues serves GET /api/revenues?year=&month=.
func (s *Server) handleListRevenues(w http.ResponseWriter, r *http.Request) {
	month, year, err := parseMonthYear(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	revenues, err := s.svc.MonthlyRevenues(r.Context(), month, year)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list revenues",
			"error", err,
			"year", year,
			"month", month)
		respondError(w, http.StatusInternalServerError, "failed to list revenues")
		return
	}

	out := make([]revenueJSON, 0, len(revenues))
	for _, rev := range revenues {
		out = append(out, toRevenueJSON(rev))
	}
	respondJSON(w, http.StatusOK, out)
}

// handleCreateRevenue serves POST /api/revenues.
func (s *Server) handleCreateRevenue(w http.ResponseWriter, r *http.Request) {
	var req revenueRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	rev, err := req.toRevenue()
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	saved, err := s.svc.RecordRevenue(r.Context(), rev)
	if err != nil {
		if isValidationError(err) {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "Failed to record revenue", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save revenue")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"id": saved.ID})
}

// handleDeleteRevenue serves DELETE /api/revenues/{id}.
func (s *Server) handleDeleteRevenue(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "missing revenue id")
		return
	}

	if err := s.svc.DeleteRevenue(r.Context(), id); err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			respondError(w, http.StatusNotFound, "revenue not found")
			return
		}
		slog.ErrorContext(r.Context(), "Failed to delete revenue",
			"error", err,
			"revenue_id", id)
		respondError(w, http.StatusInternalServerError, "failed to delete revenue")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
