package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/radion-x/ODI-Aaron-3/internal/catalog"
	"github.com/radion-x/ODI-Aaron-3/internal/service"
	"github.com/radion-x/ODI-Aaron-3/internal/transport/rest/handler"
)

// Container holds all dependencies for the router
type Container struct {
	Catalogs          *catalog.Registry
	AssessmentService *service.AssessmentService
	SessionService    *service.SessionService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	catalogHandler := handler.NewCatalogHandler(c.Catalogs)
	sessionHandler := handler.NewSessionHandler(c.SessionService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	api := r.PathPrefix("/api").Subrouter()

	// Relay endpoints
	api.HandleFunc("/save-assessment", assessmentHandler.Save).Methods("POST", "OPTIONS")
	api.HandleFunc("/interpret-assessment", assessmentHandler.Interpret).Methods("POST", "OPTIONS")
	api.HandleFunc("/email-results-to-user", assessmentHandler.EmailUser).Methods("POST", "OPTIONS")
	api.HandleFunc("/submit-assessment", assessmentHandler.Submit).Methods("POST", "OPTIONS")
	api.HandleFunc("/get-assessments", assessmentHandler.GetAll).Methods("GET", "OPTIONS")

	// Wizard endpoints
	api.HandleFunc("/catalogs/{id}", catalogHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/sessions", sessionHandler.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/sessions/{id}/answer", sessionHandler.Answer).Methods("POST", "OPTIONS")
	api.HandleFunc("/sessions/{id}/advance", sessionHandler.Advance).Methods("POST", "OPTIONS")
	api.HandleFunc("/sessions/{id}/retreat", sessionHandler.Retreat).Methods("POST", "OPTIONS")
	api.HandleFunc("/sessions/{id}/restart", sessionHandler.Restart).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
