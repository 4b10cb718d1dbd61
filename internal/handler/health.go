package handler

import (
	"net/http"

	"go.uber.org/zap"
)

// Health handles GET /healthz.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// Ready handles GET /readyz. It reports 503 while the backend behind the API
// base cannot be reached.
func (h *Handlers) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.api.Ping(r.Context()); err != nil {
		h.logger.Warn("backend not ready", zap.String("apiBase", h.Endpoints.APIBase), zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, "backend unavailable")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ready"}`))
}
