package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

// handleReport serves GET /api/report?year=&month=&window=. Month and year
// default to the current month, window to the configured trend length.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	month, year, err := parseMonthYear(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	window := s.trendWindow
	if v := strings.TrimSpace(r.URL.Query().Get("window")); v != "" {
		window, err = strconv.Atoi(v)
		if err != nil || window < 1 || window > 24 {
			respondError(w, http.StatusBadRequest, "invalid window: must be between 1 and 24")
			return
		}
	}

	report, err := s.getReport(r.Context(), month, year, window)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to build report",
			"error", err,
			"year", year,
			"month", month)
		respondError(w, http.StatusInternalServerError, "failed to build report")
		return
	}

	respondJSON(w, http.StatusOK, toReportJSON(report))
}
