package interfaces

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/sebuszqo/FinanceTracker/internal/finance/application"
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

type GoalServiceInterface interface {
	GetAllGoals() ([]application.GoalWithProgress, error)
	GetGoal(goalID int) (*application.GoalWithProgress, error)
	GetGoalProgress(goalID int) (*application.GoalProgressReport, error)
	CreateGoal(payload domain.GoalPayload) (*application.GoalWithProgress, error)
	UpdateGoal(goalID int, payload domain.GoalPayload) (*application.GoalWithProgress, error)
	DeleteGoal(goalID int) error
}

type GoalHandler struct {
	service      GoalServiceInterface
	respondJSON  RespondJSONFunc
	respondError RespondErrorFunc
}

func NewGoalHandler(service GoalServiceInterface, respondJSON RespondJSONFunc, respondError RespondErrorFunc) *GoalHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		log.Fatal("GoalHandler dependencies must not be nil")
		return nil
	}
	return &GoalHandler{service: service, respondJSON: respondJSON, respondError: respondError}
}

func (h *GoalHandler) GetAllGoals(w http.ResponseWriter, _ *http.Request) {
	goals, err := h.service.GetAllGoals()
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to fetch goals")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    goals,
	})
}

func (h *GoalHandler) GetGoal(w http.ResponseWriter, r *http.Request) {
	goalID, ok := parsePathID(r, "id")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid goal ID")
		return
	}

	goal, err := h.service.GetGoal(goalID)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to fetch goal")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    goal,
	})
}

func (h *GoalHandler) GetGoalProgress(w http.ResponseWriter, r *http.Request) {
	goalID, ok := parsePathID(r, "id")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid goal ID")
		return
	}

	report, err := h.service.GetGoalProgress(goalID)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to fetch goal progress")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    report,
	})
}

func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var payload domain.GoalPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := h.service.CreateGoal(payload)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to create goal")
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    goal,
	})
}

func (h *GoalHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	goalID, ok := parsePathID(r, "id")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid goal ID")
		return
	}

	var payload domain.GoalPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := h.service.UpdateGoal(goalID, payload)
	if err != nil {
		respondServiceError(h.respondError, w, err, "Failed to update goal")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    goal,
	})
}

func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	goalID, ok := parsePathID(r, "id")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid goal ID")
		return
	}

	if err := h.service.DeleteGoal(goalID); err != nil {
		respondServiceError(h.respondError, w, err, "Failed to delete goal")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Goal deleted successfully",
	})
}
