package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_PATH", "RESULTS_PER_PAGE", "CYCLE_REFRESH_ENABLED", "CYCLE_REFRESH_INTERVAL", "POSTGRES_URL"} {
		t.Setenv(key, "")
	}

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", config.Port)
	assert.Equal(t, "./db/shouldibuy.db", config.DBPath)
	assert.Equal(t, 10, config.ResultsPerPage)
	assert.False(t, config.Cycles.RefreshEnabled)
	assert.Equal(t, 6*time.Hour, config.Cycles.RefreshInterval)
	assert.Empty(t, config.Legacy.PostgresURL)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RESULTS_PER_PAGE", "25")
	t.Setenv("CYCLE_REFRESH_ENABLED", "true")
	t.Setenv("CYCLE_REFRESH_INTERVAL", "30m")
	t.Setenv("POSTGRES_URL", "postgres://localhost/products")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", config.Port)
	assert.Equal(t, 25, config.ResultsPerPage)
	assert.True(t, config.Cycles.RefreshEnabled)
	assert.Equal(t, 30*time.Minute, config.Cycles.RefreshInterval)
	assert.Equal(t, "postgres://localhost/products", config.Legacy.PostgresURL)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		key         string
		value       string
		errContains string
	}{
		{"page_size_not_a_number", "RESULTS_PER_PAGE", "ten", "invalid RESULTS_PER_PAGE"},
		{"page_size_zero", "RESULTS_PER_PAGE", "0", "RESULTS_PER_PAGE must be positive"},
		{"refresh_flag", "CYCLE_REFRESH_ENABLED", "sometimes", "invalid CYCLE_REFRESH_ENABLED"},
		{"refresh_interval", "CYCLE_REFRESH_INTERVAL", "daily", "invalid CYCLE_REFRESH_INTERVAL"},
		{"refresh_interval_negative", "CYCLE_REFRESH_INTERVAL", "-1h", "CYCLE_REFRESH_INTERVAL must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
