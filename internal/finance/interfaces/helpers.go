package interfaces

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

// Respond helpers are injected by the composition root so every
// handler emits the same {"success", "data"/"error"} envelope.
type (
	RespondJSONFunc  func(w http.ResponseWriter, status int, payload interface{})
	RespondErrorFunc func(w http.ResponseWriter, status int, message string, fieldErrors ...[]*financeErrors.ValidationError)
)

func parsePathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// respondServiceError maps service failures onto the error taxonomy:
// validation -> 400 with field errors, missing entity -> 404,
// referenced category -> 400 conflict, anything else -> generic 500
// (the underlying error is logged, never sent to the caller).
func respondServiceError(respondError RespondErrorFunc, w http.ResponseWriter, err error, fallback string) {
	if validationErrors, ok := financeErrors.AsValidationErrors(err); ok {
		respondError(w, http.StatusBadRequest, "Validation failed", validationErrors.Errors)
		return
	}

	var validationError *financeErrors.ValidationError
	if errors.As(err, &validationError) {
		respondError(w, http.StatusBadRequest, "Validation failed", []*financeErrors.ValidationError{validationError})
		return
	}

	switch {
	case errors.Is(err, financeErrors.ErrCategoryNotFound):
		respondError(w, http.StatusNotFound, "Category not found")
	case errors.Is(err, financeErrors.ErrTransactionNotFound):
		respondError(w, http.StatusNotFound, "Transaction not found")
	case errors.Is(err, financeErrors.ErrGoalNotFound):
		respondError(w, http.StatusNotFound, "Goal not found")
	case errors.Is(err, financeErrors.ErrCategoryInUse):
		respondError(w, http.StatusBadRequest, "Cannot delete category that is being used by transactions")
	default:
		log.Printf("unexpected service error: %v", err)
		respondError(w, http.StatusInternalServerError, fallback)
	}
}
