package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	database "github.com/sebuszqo/FinanceTracker/internal/db"
	"github.com/sebuszqo/FinanceTracker/internal/finance/application"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
	"github.com/sebuszqo/FinanceTracker/internal/finance/infrastructure"
	"github.com/sebuszqo/FinanceTracker/internal/finance/interfaces"
)

type contextKey string

const requestIDKey contextKey = "requestID"

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string, fieldErrors ...[]*financeErrors.ValidationError) {
	payload := map[string]interface{}{
		"success": false,
		"error":   message,
	}
	if len(fieldErrors) > 0 && len(fieldErrors[0]) > 0 {
		payload["errors"] = fieldErrors[0]
	}
	respondJSON(w, status, payload)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		log.Printf("[%s] Started %s %s", requestID, r.Method, r.URL.Path)

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))

		log.Printf("[%s] Completed %s in %v", requestID, r.URL.Path, time.Since(start))
	})
}

type Server struct {
	router             *http.ServeMux
	categoryHandler    *interfaces.CategoryHandler
	transactionHandler *interfaces.TransactionHandler
	goalHandler        *interfaces.GoalHandler
	dbService          *database.DBService
}

func NewServer(
	categoryHandler *interfaces.CategoryHandler,
	transactionHandler *interfaces.TransactionHandler,
	goalHandler *interfaces.GoalHandler,
	dbService *database.DBService,
) *Server {
	return &Server{
		router:             http.NewServeMux(),
		categoryHandler:    categoryHandler,
		transactionHandler: transactionHandler,
		goalHandler:        goalHandler,
		dbService:          dbService,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusNotFound, "Path not found")
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	health := s.dbService.Health()
	if health["status"] != "up" {
		respondError(w, http.StatusServiceUnavailable, "Database is not ready")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    map[string]string{"status": "ready"},
	})
}

func (s *Server) RegisterRoutes() {
	router := http.NewServeMux()

	router.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	router.Handle("GET /api/categories", http.HandlerFunc(s.categoryHandler.GetAllCategories))
	router.Handle("POST /api/categories", http.HandlerFunc(s.categoryHandler.CreateCategory))
	router.Handle("GET /api/categories/{id}", http.HandlerFunc(s.categoryHandler.GetCategory))
	router.Handle("PUT /api/categories/{id}", http.HandlerFunc(s.categoryHandler.UpdateCategory))
	router.Handle("DELETE /api/categories/{id}", http.HandlerFunc(s.categoryHandler.DeleteCategory))

	router.Handle("GET /api/transactions", http.HandlerFunc(s.transactionHandler.GetTransactions))
	router.Handle("POST /api/transactions", http.HandlerFunc(s.transactionHandler.CreateTransaction))
	router.Handle("GET /api/transactions/summary", http.HandlerFunc(s.transactionHandler.GetMonthlySummary))
	router.Handle("GET /api/transactions/{id}", http.HandlerFunc(s.transactionHandler.GetTransaction))
	router.Handle("PUT /api/transactions/{id}", http.HandlerFunc(s.transactionHandler.UpdateTransaction))
	router.Handle("DELETE /api/transactions/{id}", http.HandlerFunc(s.transactionHandler.DeleteTransaction))

	router.Handle("GET /api/goals", http.HandlerFunc(s.goalHandler.GetAllGoals))
	router.Handle("POST /api/goals", http.HandlerFunc(s.goalHandler.CreateGoal))
	router.Handle("GET /api/goals/{id}", http.HandlerFunc(s.goalHandler.GetGoal))
	router.Handle("GET /api/goals/{id}/progress", http.HandlerFunc(s.goalHandler.GetGoalProgress))
	router.Handle("PUT /api/goals/{id}", http.HandlerFunc(s.goalHandler.UpdateGoal))
	router.Handle("DELETE /api/goals/{id}", http.HandlerFunc(s.goalHandler.DeleteGoal))

	router.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = router
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("DB_CONNECTION_STRING") == "" {
		return errors.New("no DB_CONNECTION_STRING provided")
	}
	return nil
}

// StartOverdueGoalScheduler logs unfinished goals whose deadline has
// passed, once a day.
func StartOverdueGoalScheduler(goalService *application.GoalService) error {
	c := cron.New()
	_, err := c.AddFunc("@daily", func() {
		overdue, err := goalService.GetOverdueGoals()
		if err != nil {
			log.Printf("Error checking overdue goals: %v", err)
			return
		}
		for _, goal := range overdue {
			log.Printf("Goal %q is past its deadline (%s)", goal.Name, *goal.Deadline)
		}
	})
	if err != nil {
		return err
	}
	c.Start()
	return nil
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server: %v", err)
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := dbService.Migrate(); err != nil {
		log.Fatalf("Could not run database migrations: %v", err)
	}

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	goalRepo := infrastructure.NewGoalRepository(dbService.DB)

	categoryService := application.NewCategoryService(categoryRepo)
	transactionService := application.NewTransactionService(transactionRepo, categoryService)
	goalService := application.NewGoalService(goalRepo)

	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)
	goalHandler := interfaces.NewGoalHandler(goalService, respondJSON, respondError)

	server := NewServer(categoryHandler, transactionHandler, goalHandler, dbService)
	server.RegisterRoutes()

	if err := StartOverdueGoalScheduler(goalService); err != nil {
		log.Fatalf("Scheduler didn't start, stopping the app: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	handler := loggingMiddleware(server.router)
	log.Printf("Server starting on port %s...", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
