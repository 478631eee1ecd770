package interfaces

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/sebuszqo/FinanceTracker/internal/finance/application"
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

type TransactionServiceInterface interface {
	GetTransactions(filter domain.TransactionFilter) ([]domain.Transaction, error)
	GetTransaction(transactionID int) (*domain.Transaction, error)
	CreateTransaction(payload domain.TransactionPayload) (*domain.Transaction, error)
	UpdateTransaction(transactionID int, payload domain.TransactionPayload) (*domain.Transaction, error)
	DeleteTransaction(transactionID int) error
	GetMonthlySummary(month string) (*application.MonthlySummaryReport, error)
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  RespondJSONFunc
	respondError RespondErrorFunc
}

func NewTransactionHandler(service TransactionServiceInterface, respondJSON RespondJSONFunc, respondError RespondErrorFunc) *TransactionHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		log.Fatal("TransactionHandler dependencies must not be nil")
		return nil
	}
	return &TransactionHandler{service: service, respondJSON: respondJSON, respondError: respondError}
}

func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	var filter domain.TransactionFilter

	if month := r.URL.Query().Get("month"); month != "" {
		if !domain.IsValidMonth(month) {
			h.respondError(w, http.StatusBadRequest, "Month must be in YYYY-MM format")
			return
		}
		filter.Month = month
	}

	if transactionType := r.URL.Query().Get("type"); transactionType != "" {
		if !domain.IsValidTransactionType(transactionType) {
			h.respondError(w, http.StatusBadRequest, "Invalid transaction type")
			return
		}
		filter.Type = transactionType
	}

	if categoryIDStr := r.URL.Query().Get("category_id"); categoryIDStr != "" {
		categoryID, err := strconv.Atoi(categoryIDStr)
		if err != nil || categoryID <= 0 {
			h.respondError(w, http.StatusBadRequest, "Invalid category ID")
			return
		}
		filter.CategoryID = categoryID
	}

	transactions, err := h.service.GetTransactions(filter)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to fetch transactions")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    transactions,
	})
}

// GetMonthlySummary defaults to the current month when no month query
// parameter is given.
func (h *TransactionHandler) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	if !domain.IsValidMonth(month) {
		h.respondError(w, http.StatusBadRequest, "Month must be in YYYY-MM format")
		return
	}

	report, err := h.service.GetMonthlySummary(month)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to fetch summary")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    report,
	})
}

func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID, ok := parsePathID(r, "id")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	transaction, err := h.service.GetTransaction(transactionID)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to fetch transaction")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    transaction,
	})
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var payload domain.TransactionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction, err := h.service.CreateTransaction(payload)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to create transaction")
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    transaction,
	})
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID, ok := parsePathID(r, "id")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	var payload domain.TransactionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transaction, err := h.service.UpdateTransaction(transactionID, payload)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to update transaction")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    transaction,
	})
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID, ok := parsePathID(r, "id")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	if err := h.service.DeleteTransaction(transactionID); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to delete transaction")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Transaction deleted successfully",
	})
}
