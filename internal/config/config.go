// Package config assembles CLI settings. Every setting has a default
// that reproduces the stock behavior; environment variables (optionally
// from a .env file) override them, which is mainly useful for pointing
// the adapters at test servers.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultForecastURL = "https://forecast.weather.gov/MapClick.php"
	defaultZipListURL  = "https://graphical.weather.gov/xml/sample_products/browser_interface/ndfdXMLclient.php"
	defaultSearchURL   = "https://forecast.weather.gov/zipcity.php"
)

// Config holds all CLI settings.
type Config struct {
	ForecastURL string
	ZipListURL  string
	SearchURL   string

	FetchTimeout      time.Duration
	RequestsPerSecond float64

	LogLevel  string
	LogFormat string
}

// Load builds the configuration, applying environment overrides where
// set. A missing .env file is fine.
func Load() (*Config, error) {
	_ = godotenv.Load()

	timeoutStr := envOrDefault("WEATHER_FETCH_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		return nil, errors.New("invalid WEATHER_FETCH_TIMEOUT")
	}

	rps := 2.0
	if s := os.Getenv("WEATHER_REQUESTS_PER_SECOND"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v <= 0 {
			return nil, errors.New("invalid WEATHER_REQUESTS_PER_SECOND")
		}
		rps = v
	}

	return &Config{
		ForecastURL:       envOrDefault("WEATHER_FORECAST_URL", defaultForecastURL),
		ZipListURL:        envOrDefault("WEATHER_ZIPLIST_URL", defaultZipListURL),
		SearchURL:         envOrDefault("WEATHER_SEARCH_URL", defaultSearchURL),
		FetchTimeout:      timeout,
		RequestsPerSecond: rps,
		LogLevel:          envOrDefault("WEATHER_LOG_LEVEL", "warn"),
		LogFormat:         envOrDefault("WEATHER_LOG_FORMAT", "text"),
	}, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
