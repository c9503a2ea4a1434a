package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/radion-x/ODI-Aaron-3/internal/catalog"
	"github.com/radion-x/ODI-Aaron-3/internal/config"
	"github.com/radion-x/ODI-Aaron-3/internal/logging"
	"github.com/radion-x/ODI-Aaron-3/internal/repository"
	"github.com/radion-x/ODI-Aaron-3/internal/service"
	"github.com/radion-x/ODI-Aaron-3/internal/transport/rest"
)

func main() {
	cfg := config.Load()

	logFile := logging.Setup(cfg.LogDir)
	defer logFile.Close()

	log.Println("started")
	if cfg.AI.IsEnabled() {
		log.Printf("AI interpreter: %s", cfg.AI.Model)
	} else {
		log.Println("AI interpreter: NOT SET (using canned observations)")
	}
	if cfg.SMTP.IsEnabled() {
		log.Printf("Mail relay: %s:%d", cfg.SMTP.Host, cfg.SMTP.Port)
	} else {
		log.Println("Mail relay: NOT SET (emails will be skipped)")
	}

	// Durable record store
	store, err := repository.NewFileAssessmentStore(cfg.DataFile)
	if err != nil {
		log.Fatal("Failed to open assessment store:", err)
	}
	log.Printf("Assessment store: %s", cfg.DataFile)

	// One process-wide immutable catalog registry
	catalogs := catalog.Default()

	// Initialize services
	interpreter := service.NewInterpreterService(&cfg.AI)
	mailer := service.NewMailerService(&cfg.SMTP)
	assessmentSvc := service.NewAssessmentService(catalogs, store, interpreter, mailer)
	sessionSvc := service.NewSessionService(catalogs)

	// Create router with container
	container := &rest.Container{
		Catalogs:          catalogs,
		AssessmentService: assessmentSvc,
		SessionService:    sessionSvc,
	}
	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  POST /api/save-assessment")
		log.Println("  POST /api/interpret-assessment")
		log.Println("  POST /api/email-results-to-user")
		log.Println("  POST /api/submit-assessment")
		log.Println("  GET  /api/get-assessments")
		log.Println("  GET  /api/catalogs/{id}")
		log.Println("  POST /api/sessions")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
