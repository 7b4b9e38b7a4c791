package main

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"loan-predictor/internal/config"
	"loan-predictor/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Model: config.ModelConfig{Path: "../models/loan_approval_model.json"},
		Policy: config.PolicyConfig{
			MinCreditScore:     600,
			LowRiskCreditScore: 750,
			IncomeToLoanRatio:  "0.3",
		},
		Chart: config.ChartConfig{Width: 320, Height: 200},
	}
}

func TestInitializeServices(t *testing.T) {
	t.Run("loads model and builds dependencies", func(t *testing.T) {
		deps, err := initializeServices(testConfig(), testLogger())
		require.NoError(t, err)
		assert.NotNil(t, deps.Decisions)
		assert.NotNil(t, deps.Charts)
		assert.NotNil(t, deps.Pages)
		assert.NotEmpty(t, deps.ModelVersion)
	})

	t.Run("missing model is fatal", func(t *testing.T) {
		cfg := testConfig()
		cfg.Model.Path = "../models/does-not-exist.json"

		_, err := initializeServices(cfg, testLogger())
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrModelUnavailable))
	})

	t.Run("invalid policy is rejected", func(t *testing.T) {
		cfg := testConfig()
		cfg.Policy.IncomeToLoanRatio = "a third"

		_, err := initializeServices(cfg, testLogger())
		assert.Error(t, err)
	})
}

func TestStartServerAndShutdown(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:         0,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			IdleTimeout:  5 * time.Second,
		},
	}
	srv, serverErrors, shutdownChan := startServer(cfg, http.NewServeMux(), testLogger())
	require.NotNil(t, srv)
	require.NotNil(t, serverErrors)
	require.NotNil(t, shutdownChan)

	signals := make(chan os.Signal, 1)
	signals <- syscall.SIGTERM

	done := make(chan struct{})
	go func() {
		handleShutdown(srv, signals, serverErrors, testLogger())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("shutdown did not complete")
	}
}

func TestHandleShutdownAfterServerExit(t *testing.T) {
	serverErrors := make(chan error, 1)
	serverErrors <- nil

	handleShutdown(&http.Server{}, make(chan os.Signal), serverErrors, testLogger())
}
