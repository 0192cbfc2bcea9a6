package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/mohammedahmeduddin04/DocAI/internal/api"
	"github.com/mohammedahmeduddin04/DocAI/internal/auth"
	"github.com/mohammedahmeduddin04/DocAI/internal/config"
	"github.com/mohammedahmeduddin04/DocAI/internal/prefs"
	"github.com/mohammedahmeduddin04/DocAI/internal/service"
	"github.com/mohammedahmeduddin04/DocAI/internal/storage"
	"github.com/mohammedahmeduddin04/DocAI/internal/store"
	"github.com/mohammedahmeduddin04/DocAI/internal/surveillance"
	"github.com/mohammedahmeduddin04/DocAI/pkg/rationale"
)

func main() {
	// Load configuration
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}
	cfg := configManager.GetConfig()

	logger := newLogger(cfg.Logging.Level, cfg.Logging.Format)

	// Open the durable medium
	backend, err := storage.Open(cfg.Storage)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open storage backend")
	}
	defer backend.Close()

	logger.WithFields(logrus.Fields{
		"backend": cfg.Storage.Backend,
		"host":    cfg.Server.Host,
		"port":    cfg.Server.Port,
	}).Info("Starting DocAI server")

	// Wire services
	reviews := store.NewReviewStore(backend, logger)
	predictor := service.NewPredictor(reviews, logger, cfg.Predictor.ScanDelay)
	authSvc := auth.NewService(backend, logger)
	surveillanceSvc := surveillance.NewService(logger, cfg.Predictor.ReportDelay)
	prefsSvc := prefs.NewService(backend)

	rationaleClient, err := rationale.NewResilientClient(
		rationale.NewClient(rationale.Config{
			BaseURL:   cfg.Rationale.BaseURL,
			APIKey:    cfg.Rationale.APIKey,
			Model:     cfg.Rationale.Model,
			Timeout:   cfg.Rationale.Timeout,
			RateLimit: cfg.Rationale.RateLimit,
		}),
		cfg.Rationale.CacheSize,
		logger,
	)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create rationale client")
	}

	server := api.NewServer(cfg, api.Deps{
		Auth:         authSvc,
		Predictor:    predictor,
		Reviews:      reviews,
		Surveillance: surveillanceSvc,
		Prefs:        prefsSvc,
		Rationale:    rationaleClient,
	}, logger)

	// Graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, gracefully shutting down")
		cancel()
	}()

	if err := server.Start(ctx); err != nil {
		logger.WithError(err).Fatal("Server failed")
	}

	logger.Info("Server stopped")
}

func newLogger(level, format string) *logrus.Logger {
	logger := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)

	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
