package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

type CategoryServiceInterface interface {
	GetAllCategories() ([]domain.Category, error)
	GetCategory(categoryID int) (*domain.Category, error)
	CreateCategory(payload domain.CategoryPayload) (*domain.Category, error)
	UpdateCategory(categoryID int, payload domain.CategoryPayload) (*domain.Category, error)
	DeleteCategory(categoryID int) error
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  RespondJSONFunc
	respondError RespondErrorFunc
}

func NewCategoryHandler(service CategoryServiceInterface, respondJSON RespondJSONFunc, respondError RespondErrorFunc) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		log.Fatal("CategoryHandler dependencies must not be nil")
		return nil
	}
	return &CategoryHandler{service: service, respondJSON: respondJSON, respondError: respondError}
}

func (h *CategoryHandler) GetAllCategories(w http.ResponseWriter, _ *http.Request) {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to fetch categories")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    categories,
	})
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := parsePathID(r, "id")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	category, err := h.service.GetCategory(categoryID)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to fetch category")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    category,
	})
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var payload domain.CategoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.CreateCategory(payload)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to create category")
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    category,
	})
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := parsePathID(r, "id")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var payload domain.CategoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := h.service.UpdateCategory(categoryID, payload)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to update category")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    category,
	})
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := parsePathID(r, "id")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	if err := h.service.DeleteCategory(categoryID); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to delete category")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Category deleted successfully",
	})
}
