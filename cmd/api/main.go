package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dan9191/bizplan/internal/assessment"
	"github.com/Dan9191/bizplan/internal/config"
	"github.com/Dan9191/bizplan/internal/handler"
	"github.com/Dan9191/bizplan/internal/integrations/cbr"
	"github.com/Dan9191/bizplan/internal/repository"
	"github.com/Dan9191/bizplan/internal/scheduler"
	"github.com/Dan9191/bizplan/internal/service"
	"github.com/Dan9191/bizplan/internal/utils/email"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	if os.Getenv("ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			logger.Debugf("No .env file loaded: %v", err)
		}
	}

	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	cbrClient := cbr.NewCBRClient(cfg, logger)
	cache := assessment.NewCache(repo, logger)
	sender := email.NewSender(cfg, logger)
	svc := service.NewService(repo, cache, cbrClient, sender, logger, cfg)
	if err := svc.SeedReferenceData(ctx); err != nil {
		logger.Fatalf("Failed to seed reference data: %v", err)
	}

	// Background jobs
	jobs := scheduler.New(logger)
	if err := jobs.AddKeyRateRefresh(cfg.KeyRateRefresh, cbrClient); err != nil {
		logger.Fatalf("Failed to schedule jobs: %v", err)
	}
	jobs.Start()
	go func() {
		if _, err := cbrClient.Refresh(ctx); err != nil {
			logger.Warnf("Initial key rate fetch failed: %v", err)
		}
	}()

	// Setup router
	h := handler.NewHandler(svc, logger)
	r := handler.NewRouter(h, cfg, logger)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
	<-jobs.Stop().Done()
}
