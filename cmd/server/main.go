package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/correlearn/backend/internal/api"
	"github.com/correlearn/backend/internal/content"
	"github.com/correlearn/backend/internal/infrastructure/config"
	"github.com/correlearn/backend/internal/service"
	"github.com/correlearn/backend/internal/store"

	_ "github.com/correlearn/backend/docs" // generated swagger docs
)

// @title           Correlearn API
// @version         1.0
// @description     Backend for the correlation learning app — flashcards, a graded multiple-choice quiz, and progress tracking.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	var (
		db  store.Store
		err error
	)
	if cfg.DBPath != "" {
		db, err = store.NewSQLite(cfg.DBPath, content.Flashcards(), content.Questions())
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
	} else {
		db = store.NewMemory(content.Flashcards(), content.Questions())
	}
	defer db.Close()

	progressSvc := service.NewProgressService(db, logger)
	quizSvc := service.NewQuizService(db, progressSvc, logger)
	handler := api.NewHandler(db, quizSvc, progressSvc, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
