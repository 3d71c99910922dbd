package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://forecast.weather.gov/MapClick.php", cfg.ForecastURL)
	assert.Equal(t, "https://forecast.weather.gov/zipcity.php", cfg.SearchURL)
	assert.Contains(t, cfg.ZipListURL, "ndfdXMLclient.php")
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 2.0, cfg.RequestsPerSecond)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WEATHER_FORECAST_URL", "http://localhost:8080/MapClick.php")
	t.Setenv("WEATHER_FETCH_TIMEOUT", "2s")
	t.Setenv("WEATHER_REQUESTS_PER_SECOND", "0.5")
	t.Setenv("WEATHER_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/MapClick.php", cfg.ForecastURL)
	assert.Equal(t, 2*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 0.5, cfg.RequestsPerSecond)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("WEATHER_FETCH_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WEATHER_FETCH_TIMEOUT")
}

func TestLoad_NonPositiveTimeout(t *testing.T) {
	t.Setenv("WEATHER_FETCH_TIMEOUT", "-1s")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidRate(t *testing.T) {
	t.Setenv("WEATHER_REQUESTS_PER_SECOND", "lots")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WEATHER_REQUESTS_PER_SECOND")
}
