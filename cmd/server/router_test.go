package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/Nabil-Bkz/boutique/internal/config"
	"github.com/Nabil-Bkz/boutique/internal/endpoints"
	"github.com/Nabil-Bkz/boutique/internal/middleware"
)

func testConfig(origins ...string) *config.Config {
	return testConfigFor("http://backend:8000", origins...)
}

func testConfigFor(baseURL string, origins ...string) *config.Config {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return &config.Config{
		Port:            "0",
		Endpoints:       endpoints.New(baseURL),
		AllowedOrigins:  origins,
		UpstreamTimeout: time.Second,
	}
}

func TestRouterServesConfigWithRequestID(t *testing.T) {
	router := newRouter(testConfig(), zaptest.NewLogger(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/config.json", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"apiBase":"http://backend:8000/api"`) {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
	if rec.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("expected request id header")
	}
}

func TestRouterMetrics(t *testing.T) {
	router := newRouter(testConfig(), zaptest.NewLogger(t))

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/config.json", nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "boutique_edge_config_requests_total") {
		t.Error("expected config counter in metrics output")
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	router := newRouter(testConfig("http://localhost:5173"), zaptest.NewLogger(t))

	req := httptest.NewRequest(http.MethodOptions, "/api/products/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("expected allowed origin, got %q", got)
	}
}

func TestRouterWithoutStaticDir(t *testing.T) {
	router := newRouter(testConfig(), zaptest.NewLogger(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/1", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestRouterProxyKeepsSingleCORSAndRequestID(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", r.Header.Get("Origin"))
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Vary", "Origin, Accept-Encoding")
		w.Header().Set(middleware.RequestIDHeader, r.Header.Get(middleware.RequestIDHeader))
		w.Write([]byte(`[]`))
	}))
	defer upstream.Close()

	router := newRouter(testConfigFor(upstream.URL, "http://localhost:5173"), zaptest.NewLogger(t))
	req := httptest.NewRequest(http.MethodGet, "/api/products/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Values("Access-Control-Allow-Origin"); len(got) != 1 || got[0] != "http://localhost:5173" {
		t.Errorf("expected a single allowed origin, got %q", got)
	}
	if got := rec.Header().Values("Access-Control-Allow-Credentials"); len(got) != 0 {
		t.Errorf("expected backend credentials header to be dropped, got %q", got)
	}
	if got := rec.Header().Values(middleware.RequestIDHeader); len(got) != 1 {
		t.Errorf("expected a single request id, got %q", got)
	}
	var origin, encoding int
	for _, v := range rec.Header().Values("Vary") {
		for _, tok := range strings.Split(v, ",") {
			switch strings.TrimSpace(tok) {
			case "Origin":
				origin++
			case "Accept-Encoding":
				encoding++
			}
		}
	}
	if origin != 1 || encoding != 1 {
		t.Errorf("expected Origin and Accept-Encoding once in Vary, got %q", rec.Header().Values("Vary"))
	}
}

func TestRouterProxiesBareAPI(t *testing.T) {
	var gotPath string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer upstream.Close()

	rec := httptest.NewRecorder()
	newRouter(testConfigFor(upstream.URL), zaptest.NewLogger(t)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if gotPath != "/api" {
		t.Errorf("expected /api upstream, got %q", gotPath)
	}
}

func TestRouterStripsHopHeaders(t *testing.T) {
	var gotProxyAuth, gotCustom string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotProxyAuth = r.Header.Get("Proxy-Authorization")
		gotCustom = r.Header.Get("X-Hop")
		w.Header().Set("Proxy-Authenticate", "Basic realm=backend")
		w.Header().Set("X-Backend", "django")
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/orders/", nil)
	req.Header.Set("Proxy-Authorization", "Basic c2VjcmV0")
	req.Header.Set("Connection", "X-Hop")
	req.Header.Set("X-Hop", "1")
	rec := httptest.NewRecorder()
	newRouter(testConfigFor(upstream.URL), zaptest.NewLogger(t)).ServeHTTP(rec, req)

	if gotProxyAuth != "" {
		t.Errorf("Proxy-Authorization reached the backend: %q", gotProxyAuth)
	}
	if gotCustom != "" {
		t.Errorf("header listed in Connection reached the backend: %q", gotCustom)
	}
	if got := rec.Header().Get("Proxy-Authenticate"); got != "" {
		t.Errorf("Proxy-Authenticate reached the client: %q", got)
	}
	if rec.Header().Get("X-Backend") != "django" {
		t.Error("expected end-to-end header to be copied")
	}
}

func TestRouterServesStaticDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>shop</html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := testConfig()
	cfg.StaticDir = dir
	router := newRouter(cfg, zaptest.NewLogger(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products/1", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "<html>shop</html>" {
		t.Errorf("expected index fallback, got %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/config.json", nil))
	if !strings.Contains(rec.Body.String(), `"apiBase"`) {
		t.Errorf("expected /config.json to win over static files, got %q", rec.Body.String())
	}
}
