package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Nabil-Bkz/boutique/internal/client"
	"github.com/Nabil-Bkz/boutique/internal/endpoints"
	"github.com/Nabil-Bkz/boutique/internal/model"
)

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	Endpoints  endpoints.Endpoints
	httpClient *http.Client
	api        *client.Client
	logger     *zap.Logger
}

// NewHandlers creates handlers that forward API traffic to ep.BaseURL.
func NewHandlers(ep endpoints.Endpoints, upstreamTimeout time.Duration, logger *zap.Logger) *Handlers {
	return &Handlers{
		Endpoints: ep,
		httpClient: &http.Client{
			Timeout: upstreamTimeout,
			// Backend redirects are passed through to the browser.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		api:    client.New(ep, client.WithTimeout(upstreamTimeout), client.WithLogger(logger)),
		logger: logger,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}
