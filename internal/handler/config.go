package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Nabil-Bkz/boutique/internal/metrics"
	"github.com/Nabil-Bkz/boutique/internal/model"
)

// RuntimeConfig handles GET /config.json.
func (h *Handlers) RuntimeConfig(w http.ResponseWriter, r *http.Request) {
	metrics.ConfigRequestsTotal.Inc()
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, model.RuntimeConfig{
		BaseURL:      h.Endpoints.BaseURL,
		APIBase:      h.Endpoints.APIBase,
		AdminBaseURL: h.Endpoints.AdminBaseURL,
	})
}

// AdminRedirect handles GET /admin and GET /admin/*.
func (h *Handlers) AdminRedirect(w http.ResponseWriter, r *http.Request) {
	target := h.Endpoints.AdminBaseURL + chi.URLParam(r, "*")
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	metrics.AdminRedirectsTotal.Inc()
	http.Redirect(w, r, target, http.StatusFound)
}
