package http

import (
	"errors"
	"log/slog"
	"net/http"

	"atelie/internal/core"
	"atelie/internal/ledger"
)

// handleListMonthlyExpenses serves GET /api/transactions?year=&month=. It
// returns the expanded occurrences for the month, not the raw records.
func (s *Server) handleListMonthlyExpenses(w http.ResponseWriter, r *http.Request) {
	month, year, err := parseMonthYear(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	expenses, err := s.svc.MonthlyExpenses(r.Context(), month, year)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list monthly expenses",
			"error", err,
			"year", year,
			"month", month)
		respondError(w, http.StatusInternalServerError, "failed to list expenses")
		return
	}

	out := make([]monthlyExpenseJSON, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toMonthlyExpenseJSON(e))
	}
	respondJSON(w, http.StatusOK, out)
}

// handleCreateTransaction serves POST /api/transactions.
func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	tx, err := req.toTransaction()
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	saved, err := s.svc.RecordTransaction(r.Context(), tx)
	if err != nil {
		if isValidationError(err) {
			respondError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "Failed to record transaction", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save transaction")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"id": saved.ID})
}

// handleDeleteTransaction serves DELETE /api/transactions/{id}.
func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "missing transaction id")
		return
	}

	if err := s.svc.DeleteTransaction(r.Context(), id); err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			respondError(w, http.StatusNotFound, "transaction not found")
			return
		}
		slog.ErrorContext(r.Context(), "Failed to delete transaction",
			"error", err,
			"transaction_id", id)
		respondError(w, http.StatusInternalServerError, "failed to delete transaction")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// isValidationError reports whether err wraps one of the domain validation
// sentinels.
func isValidationError(err error) bool {
	for _, sentinel := range []error{
		core.ErrInvalidDate,
		core.ErrInvalidAmount,
		core.ErrEmptyID,
		core.ErrEmptyDescription,
		core.ErrInvalidType,
		core.ErrInvalidCategory,
		core.ErrEmptySubCategory,
		core.ErrInvalidBank,
		core.ErrInvalidMethod,
		core.ErrInvalidInstallments,
		core.ErrDescriptionTooLong,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
