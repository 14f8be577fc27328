package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	settings, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 125*time.Millisecond, settings.Pacing.TrendInterval)
	assert.Equal(t, 1200*time.Millisecond, settings.Pacing.CashflowInterval)
	assert.Equal(t, 2*time.Second, settings.Retry.Fallback)
	assert.Equal(t, 30*time.Second, settings.Retry.Ceiling)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := `
pacing:
  trend_interval: 250ms
retry:
  ceiling: 10s
providers:
  xero_base_url: https://xero.test
categories:
  fuel: vehicle
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, settings.Pacing.TrendInterval)
	assert.Equal(t, 1200*time.Millisecond, settings.Pacing.CashflowInterval, "untouched defaults survive")
	assert.Equal(t, 10*time.Second, settings.Retry.Ceiling)
	assert.Equal(t, "https://xero.test", settings.Providers.XeroBaseURL)
	assert.Equal(t, "vehicle", settings.Categories["fuel"])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/settings.yaml")
	assert.Error(t, err)
}
