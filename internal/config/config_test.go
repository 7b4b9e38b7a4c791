package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Load default config when no config file is present", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "8081")
		t.Setenv("MODEL_PATH", "/opt/models/loan.json")

		cfg, err := LoadConfig(t.TempDir())
		assert.NoError(t, err)
		assert.NotNil(t, cfg)

		assert.Equal(t, 8081, cfg.Server.Port)
		assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
		assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
		assert.True(t, cfg.Server.RateLimit.Enabled)
		assert.Equal(t, 10.0, cfg.Server.RateLimit.RPS)
		assert.Equal(t, 20, cfg.Server.RateLimit.Burst)

		assert.Equal(t, "info", cfg.Logger.Level)
		assert.Equal(t, "json", cfg.Logger.Encoding)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)

		assert.Equal(t, "/opt/models/loan.json", cfg.Model.Path)

		assert.Equal(t, 600, cfg.Policy.MinCreditScore)
		assert.Equal(t, 750, cfg.Policy.LowRiskCreditScore)
		assert.Equal(t, "0.3", cfg.Policy.IncomeToLoanRatio)

		assert.Equal(t, 640, cfg.Chart.Width)
		assert.Equal(t, 400, cfg.Chart.Height)
	})

	t.Run("Values from config file override defaults", func(t *testing.T) {
		dir := t.TempDir()
		content := []byte(`
logger:
  level: debug
policy:
  minCreditScore: 650
  incomeToLoanRatio: "0.25"
model:
  path: ./testdata/model.json
`)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), content, 0o644))

		cfg, err := LoadConfig(dir)
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.Logger.Level)
		assert.Equal(t, 650, cfg.Policy.MinCreditScore)
		assert.Equal(t, 750, cfg.Policy.LowRiskCreditScore)
		assert.Equal(t, "0.25", cfg.Policy.IncomeToLoanRatio)
		assert.Equal(t, "./testdata/model.json", cfg.Model.Path)
		assert.Equal(t, 8080, cfg.Server.Port)
	})

	t.Run("Return error when config file is invalid", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("server: [unclosed"), 0o644))

		_, err := LoadConfig(dir)
		assert.Error(t, err)
	})
}
