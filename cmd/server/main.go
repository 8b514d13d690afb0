package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lakemont/campsignup/internal/config"
	"github.com/lakemont/campsignup/internal/database"
	"github.com/lakemont/campsignup/internal/handler"
	"github.com/lakemont/campsignup/internal/middleware"
	"github.com/lakemont/campsignup/internal/repository"
	"github.com/lakemont/campsignup/internal/service"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize repositories
	camperRepo := repository.NewCamperRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	signupRepo := repository.NewSignupRepository(db)

	// Initialize services
	camperService := service.NewCamperService(service.CamperServiceConfig{
		CamperRepo: camperRepo,
		SignupRepo: signupRepo,
	})

	activityService := service.NewActivityService(service.ActivityServiceConfig{
		ActivityRepo: activityRepo,
	})

	signupService := service.NewSignupService(service.SignupServiceConfig{
		SignupRepo:   signupRepo,
		CamperRepo:   camperRepo,
		ActivityRepo: activityRepo,
	})

	// Initialize handlers
	camperHandler := handler.NewCamperHandler(camperService)
	activityHandler := handler.NewActivityHandler(activityService)
	signupHandler := handler.NewSignupHandler(signupService)
	healthHandler := handler.NewHealthHandler(db)

	// Setup routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", healthHandler.Check)

	mux.HandleFunc("GET /campers", camperHandler.List)
	mux.HandleFunc("POST /campers", camperHandler.Create)
	mux.HandleFunc("GET /campers/{id}", camperHandler.GetByID)
	mux.HandleFunc("PATCH /campers/{id}", camperHandler.Update)

	mux.HandleFunc("GET /activities", activityHandler.List)
	mux.HandleFunc("POST /activities", activityHandler.Create)
	mux.HandleFunc("DELETE /activities/{id}", activityHandler.Delete)

	mux.HandleFunc("POST /signups", signupHandler.Create)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
