package service

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Environment string
	Port        string
	BaseURL     string
	SiteName    string
	DBPath      string

	// ResultsPerPage is the listing page size
	ResultsPerPage int

	Legacy struct {
		// PostgresURL points at the legacy products database, used by the importer
		PostgresURL string
	}

	Cycles struct {
		RefreshEnabled  bool
		RefreshInterval time.Duration
	}
}

func LoadConfig() (*Config, error) {
	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8000"),
		SiteName:    getEnv("SITE_NAME", "Should I Buy It?"),
		DBPath:      getEnv("DB_PATH", "./db/shouldibuy.db"),
	}

	var err error
	if config.ResultsPerPage, err = getEnvInt("RESULTS_PER_PAGE", 10); err != nil {
		return nil, err
	}

	config.Legacy.PostgresURL = getEnv("POSTGRES_URL", "")

	if config.Cycles.RefreshEnabled, err = getEnvBool("CYCLE_REFRESH_ENABLED", false); err != nil {
		return nil, err
	}
	if config.Cycles.RefreshInterval, err = getEnvDuration("CYCLE_REFRESH_INTERVAL", 6*time.Hour); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.ResultsPerPage <= 0 {
		return fmt.Errorf("RESULTS_PER_PAGE must be positive, got %d", c.ResultsPerPage)
	}
	if c.Cycles.RefreshInterval <= 0 {
		return fmt.Errorf("CYCLE_REFRESH_INTERVAL must be positive, got %s", c.Cycles.RefreshInterval)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return b, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}
