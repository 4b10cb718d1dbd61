package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/Nabil-Bkz/boutique/internal/endpoints"
)

type Config struct {
	Port            string
	Endpoints       endpoints.Endpoints
	LogLevel        zapcore.Level
	AllowedOrigins  []string
	StaticDir       string
	UpstreamTimeout time.Duration
}

// Error lists every invalid setting found by Load.
type Error struct {
	Issues []string
}

func (e *Error) Error() string {
	return "invalid config: " + strings.Join(e.Issues, "; ")
}

// loadEndpoints returns the process-wide endpoints, read from API_URL once.
var loadEndpoints = endpoints.Load

func Load() (*Config, error) {
	var issues []string

	level, err := zapcore.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		issues = append(issues, fmt.Sprintf("LOG_LEVEL: %v", err))
	}

	timeoutRaw := getEnv("UPSTREAM_TIMEOUT", "15s")
	timeout, err := time.ParseDuration(timeoutRaw)
	if err != nil || timeout <= 0 {
		issues = append(issues, fmt.Sprintf("UPSTREAM_TIMEOUT must be a positive duration (got %q)", timeoutRaw))
	}

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		Endpoints:       loadEndpoints(),
		LogLevel:        level,
		AllowedOrigins:  parseOrigins(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		StaticDir:       getEnv("STATIC_DIR", ""),
		UpstreamTimeout: timeout,
	}

	if len(cfg.AllowedOrigins) == 0 {
		issues = append(issues, "CORS_ALLOWED_ORIGINS must list at least one origin")
	}
	if len(issues) > 0 {
		return nil, &Error{Issues: issues}
	}
	return cfg, nil
}

// parseOrigins splits a comma-separated list and drops empty entries.
func parseOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
