package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loan-predictor/internal/api"
	"loan-predictor/internal/config"
	"loan-predictor/internal/domain/decision"
	"loan-predictor/internal/domain/eligibility"
	"loan-predictor/internal/infrastructure/logging"
	"loan-predictor/internal/infrastructure/model"
	"loan-predictor/internal/presentation"
)

// @title Loan Approval Predictor API
// @version 1.0
// @description Scores loan applications with fixed eligibility rules and a trained approval model.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
func main() {
	cfg, logger := initializeApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps, err := initializeServices(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize application components", "error", err)
		os.Exit(1)
	}

	router := api.SetupRouter(ctx, deps, cfg, logger)

	srv, serverErrors, shutdownChan := startServer(cfg, router, logger)
	handleShutdown(srv, shutdownChan, serverErrors, logger)
}

func initializeApp() (*config.Config, *slog.Logger) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.Logger)
	logger.Info("Application starting...", "model_path", cfg.Model.Path, "port", cfg.Server.Port)

	return cfg, logger
}

// initializeServices loads the model once and builds everything that depends
// on it. A missing or malformed model is fatal; the app never serves without one.
func initializeServices(cfg *config.Config, logger *slog.Logger) (api.Dependencies, error) {
	logger.Info("Initializing application components...")

	policy, err := eligibility.NewPolicy(cfg.Policy)
	if err != nil {
		return api.Dependencies{}, fmt.Errorf("invalid eligibility policy: %w", err)
	}

	classifier, err := model.Load(cfg.Model.Path, logger)
	if err != nil {
		return api.Dependencies{}, err
	}

	charts, err := presentation.NewChartRenderer(cfg.Chart, logger)
	if err != nil {
		return api.Dependencies{}, fmt.Errorf("failed to initialize chart renderer: %w", err)
	}
	pages, err := presentation.NewPages()
	if err != nil {
		return api.Dependencies{}, fmt.Errorf("failed to parse page templates: %w", err)
	}

	engine := decision.NewEngine(classifier, logger)
	return api.Dependencies{
		Decisions:    decision.NewDecisionService(policy, engine, logger),
		Charts:       charts,
		Pages:        pages,
		ModelVersion: classifier.Version(),
	}, nil
}

func startServer(cfg *config.Config, router http.Handler, logger *slog.Logger) (*http.Server, <-chan error, <-chan os.Signal) {
	logger.Info("Setting up HTTP server...", "port", cfg.Server.Port)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Server listening on port %d", cfg.Server.Port))
		err := srv.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			serverErrors <- err
		} else {
			logger.Info("Server closed gracefully.")
			serverErrors <- nil
		}
	}()
	return srv, serverErrors, shutdownChan
}

func handleShutdown(srv *http.Server, shutdownChan <-chan os.Signal, serverErrors <-chan error, logger *slog.Logger) {
	var triggerReason string
	select {
	case sig := <-shutdownChan:
		triggerReason = "signal: " + sig.String()
		logger.Info("Shutdown signal received.", "signal", sig.String())
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server exited unexpectedly before signal", "error", err)
			os.Exit(1)
		}
		logger.Info("Server goroutine finished before signal.")
		return
	}

	logger.Info("Starting graceful shutdown...", "trigger", triggerReason)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", "error", err)
		if err := srv.Close(); err != nil {
			logger.Error("HTTP server forced close failed", "error", err)
		}
	} else {
		logger.Info("HTTP server gracefully stopped.")
	}

	select {
	case err := <-serverErrors:
		if err != nil {
			logger.Warn("Server goroutine exited with unexpected error after shutdown", "error", err)
		}
	case <-time.After(5 * time.Second):
		logger.Warn("Timed out waiting for server goroutine confirmation.")
	}

	logger.Info("Application shutdown process complete.")
}
