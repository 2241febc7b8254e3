package api

import (
	"net/http"

	"github.com/fatih/color"
	"github.com/gorilla/mux"

	"github.com/katasiddartha-lang/health-coach-ai/internal/handler"
	"github.com/katasiddartha-lang/health-coach-ai/internal/logger"
	"github.com/katasiddartha-lang/health-coach-ai/internal/middleware"
)

func SetupRouter(h *handler.Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.LoggerMiddleware)

	api := r.PathPrefix("/api").Subrouter()

	// Root - service banner
	api.HandleFunc("/", h.Root).Methods(http.MethodGet)
	api.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	// Users
	api.HandleFunc("/users", h.CreateUser).Methods(http.MethodPost)
	api.HandleFunc("/users", h.GetUsers).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", h.GetUser).Methods(http.MethodGet)

	// Health reports
	api.HandleFunc("/health-reports/upload", h.UploadReport).Methods(http.MethodPost)
	api.HandleFunc("/health-reports/analyze", h.AnalyzeReport).Methods(http.MethodPost)
	api.HandleFunc("/health-reports/{user_id}", h.GetUserReports).Methods(http.MethodGet)

	// Daily logs
	api.HandleFunc("/daily-logs", h.CreateDailyLog).Methods(http.MethodPost)
	api.HandleFunc("/daily-logs/{user_id}", h.GetUserDailyLogs).Methods(http.MethodGet)

	// Workout plans
	api.HandleFunc("/workout-plans/generate", h.GenerateWorkoutPlan).Methods(http.MethodPost)
	api.HandleFunc("/workout-plans/{user_id}", h.GetUserWorkoutPlans).Methods(http.MethodGet)

	// Exercise catalog
	api.HandleFunc("/exercises/search", h.SearchExercises).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Warning("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
