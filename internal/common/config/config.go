package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/m-orlov/taskboard/internal/common/constants"
)

var ErrMissingRequiredEnv = errors.New("missing required environment variable")

type Config struct {
	HTTPPort       string
	DatabaseURL    string
	RequestTimeout time.Duration
	LogDir         string
	LogLevel       string
}

func Load() (Config, error) {
	databaseURL, err := mustEnv("DATABASE_URL")
	if err != nil {
		return Config{}, err
	}

	return Config{
		HTTPPort:       getEnv("HTTP_PORT", constants.DefaultHTTPPort),
		DatabaseURL:    databaseURL,
		RequestTimeout: getDurationEnv("REQUEST_TIMEOUT", constants.DefaultRequestTimeout),
		LogDir:         getEnv("LOG_DIR", ""),
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func mustEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingRequiredEnv, key)
	}
	return v, nil
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
