package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Nabil-Bkz/boutique/internal/metrics"
	"github.com/Nabil-Bkz/boutique/internal/middleware"
)

var hopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// ProxyAPI handles /api/*. The request path and query are appended to the
// backend base URL unchanged.
func (h *Handlers) ProxyAPI(w http.ResponseWriter, r *http.Request) {
	target := h.Endpoints.BaseURL + r.URL.EscapedPath()
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target, r.Body)
	if err != nil {
		writeError(w, http.StatusBadGateway, fmt.Sprintf("invalid upstream request: %s", err))
		return
	}
	req.ContentLength = r.ContentLength
	req.Header = r.Header.Clone()
	stripHopHeaders(req.Header)
	req.Header.Set("X-Forwarded-Host", r.Host)

	start := time.Now()
	resp, err := h.httpClient.Do(req)
	metrics.ProxyLatency.Observe(millis(time.Since(start)))
	if err != nil {
		metrics.ProxyUpstreamErrorsTotal.Inc()
		h.logger.Warn("backend unavailable",
			zap.String("target", target),
			zap.String("requestId", middleware.GetRequestID(r.Context())),
			zap.Error(err),
		)
		writeError(w, http.StatusBadGateway, fmt.Sprintf("backend unavailable: %s", err))
		return
	}
	defer resp.Body.Close()

	metrics.ProxyRequestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	stripHopHeaders(resp.Header)
	copyResponseHeader(w.Header(), resp.Header)
	w.WriteHeader(resp.StatusCode)
	io.Copy(w, resp.Body)
}

// copyResponseHeader copies backend headers onto dst. CORS and request ID
// headers belong to the edge and are never taken from the backend; Vary
// values already present on dst are not repeated.
func copyResponseHeader(dst, src http.Header) {
	for k, vs := range src {
		switch {
		case strings.HasPrefix(k, "Access-Control-"), k == http.CanonicalHeaderKey(middleware.RequestIDHeader):
			continue
		case k == "Vary":
			for _, v := range vs {
				for _, tok := range strings.Split(v, ",") {
					if tok = strings.TrimSpace(tok); tok != "" && !hasToken(dst.Values("Vary"), tok) {
						dst.Add(k, tok)
					}
				}
			}
			continue
		}
		for _, v := range vs {
			dst.Add(k, v)
		}
	}
}

func hasToken(values []string, v string) bool {
	for _, existing := range values {
		for _, tok := range strings.Split(existing, ",") {
			if strings.EqualFold(strings.TrimSpace(tok), v) {
				return true
			}
		}
	}
	return false
}

// stripHopHeaders removes hop-by-hop headers, including any listed in
// Connection.
func stripHopHeaders(h http.Header) {
	for _, v := range h.Values("Connection") {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				h.Del(name)
			}
		}
	}
	for _, k := range hopHeaders {
		h.Del(k)
	}
}

func millis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
