// Package endpoints resolves the backend base URL and the API and admin
// roots derived from it.
package endpoints

import (
	"os"
	"sync"
)

const (
	// EnvAPIURL names the environment variable holding the backend base URL.
	// Example: API_URL=http://35.180.255.192:8000
	EnvAPIURL = "API_URL"

	// DefaultBaseURL is used when EnvAPIURL is unset or empty.
	DefaultBaseURL = "http://localhost:8000"

	apiSuffix   = "/api"
	adminSuffix = "/admin/"
)

// Endpoints holds the base URL and the two roots derived from it.
type Endpoints struct {
	BaseURL      string
	APIBase      string
	AdminBaseURL string
}

// ResolveBaseURL returns v, or DefaultBaseURL when v is empty.
func ResolveBaseURL(v string) string {
	if v != "" {
		return v
	}
	return DefaultBaseURL
}

// New derives Endpoints from a raw base URL value.
func New(v string) Endpoints {
	base := ResolveBaseURL(v)
	return Endpoints{
		BaseURL:      base,
		APIBase:      base + apiSuffix,
		AdminBaseURL: base + adminSuffix,
	}
}

// FromEnv derives Endpoints from the current value of EnvAPIURL.
func FromEnv() Endpoints {
	return New(os.Getenv(EnvAPIURL))
}

var (
	loadOnce sync.Once
	loaded   Endpoints
)

// Load returns the process-wide Endpoints. The environment is read on the
// first call only; later calls return the same values.
func Load() Endpoints {
	loadOnce.Do(func() {
		loaded = FromEnv()
	})
	return loaded
}

// APIBase returns the process-wide API root.
func APIBase() string {
	return Load().APIBase
}

// AdminBaseURL returns the process-wide admin root.
func AdminBaseURL() string {
	return Load().AdminBaseURL
}
