package config

import (
	"errors"
	"net/url"
	"os"
	"time"
)

// DefaultFeedURL is the USGS "all earthquakes, past day" GeoJSON summary feed.
const DefaultFeedURL = "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_day.geojson"

// Config holds all service settings, populated from environment variables.
type Config struct {
	FeedURL         string
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	FetchTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	fetchTimeout, err := parseDurationEnv("FETCH_TIMEOUT", "15s")
	if err != nil {
		return nil, err
	}

	shutdownTimeout, err := parseDurationEnv("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		FeedURL:         envOrDefault("FEED_URL", DefaultFeedURL),
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		FetchTimeout:    fetchTimeout,
		ShutdownTimeout: shutdownTimeout,
	}

	u, err := url.Parse(cfg.FeedURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.New("FEED_URL must be an absolute URL")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key, def string) (time.Duration, error) {
	s := envOrDefault(key, def)
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, errors.New("invalid " + key)
	}
	return d, nil
}
