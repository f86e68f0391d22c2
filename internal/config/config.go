package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/ngmaloney/weather-terminal/internal/database"
)

var validate = validator.New()

// Config holds runtime settings read from the environment
type Config struct {
	API struct {
		BaseURL      string        `validate:"required,url"`
		Timeout      time.Duration `validate:"gt=0"`
		FetchTimeout time.Duration `validate:"gt=0"`
	}

	Retry struct {
		MaxRetries int     `validate:"gte=0,lte=5"`
		Delay      time.Duration
		Multiplier float64 `validate:"gte=1"`
	}

	CircuitBreaker struct {
		Timeout time.Duration `validate:"gt=0"`
	}

	Geolocation struct {
		Mode      string  `validate:"oneof=ip static off"`
		URL       string  `validate:"omitempty,url"`
		Latitude  float64 `validate:"gte=-90,lte=90"`
		Longitude float64 `validate:"gte=-180,lte=180"`
	}

	Storage struct {
		DBPath string `validate:"required"`
	}

	Log struct {
		File  string `validate:"required"`
		Level string `validate:"oneof=debug info warn error"`
	}
}

// Load reads configuration from a .env file (if present) and the environment
func Load() (*Config, error) {
	// A missing .env is normal; values then come from the environment
	_ = godotenv.Load()

	cfg := &Config{}
	var err error

	cfg.API.BaseURL = getEnv("WEATHER_API_URL", "http://localhost:5000")
	if cfg.API.Timeout, err = parseDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.API.FetchTimeout, err = parseDuration("FETCH_TIMEOUT", "30s"); err != nil {
		return nil, err
	}

	if cfg.Retry.MaxRetries, err = parseInt("MAX_RETRIES", "1"); err != nil {
		return nil, err
	}
	if cfg.Retry.Delay, err = parseDuration("RETRY_DELAY", "500ms"); err != nil {
		return nil, err
	}
	if cfg.Retry.Multiplier, err = parseFloat("RETRY_MULTIPLIER", "2"); err != nil {
		return nil, err
	}

	if cfg.CircuitBreaker.Timeout, err = parseDuration("CIRCUIT_BREAKER_TIMEOUT", "30s"); err != nil {
		return nil, err
	}

	cfg.Geolocation.Mode = getEnv("GEOLOCATION", "ip")
	cfg.Geolocation.URL = getEnv("GEOLOCATION_URL", "http://ip-api.com/json")
	if cfg.Geolocation.Latitude, err = parseFloat("GEOLOCATION_LAT", "0"); err != nil {
		return nil, err
	}
	if cfg.Geolocation.Longitude, err = parseFloat("GEOLOCATION_LON", "0"); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = getEnv("DB_PATH", database.DBPath())

	cfg.Log.File = getEnv("LOG_FILE", "data/weather-terminal.log")
	cfg.Log.Level = getEnv("LOG_LEVEL", "info")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(key, defaultValue string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func parseInt(key, defaultValue string) (int, error) {
	n, err := strconv.Atoi(getEnv(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func parseFloat(key, defaultValue string) (float64, error) {
	f, err := strconv.ParseFloat(getEnv(key, defaultValue), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
