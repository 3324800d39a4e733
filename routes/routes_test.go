package routes_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/lizet96/citas-backend/config"
	"github.com/lizet96/citas-backend/metrics"
	"github.com/lizet96/citas-backend/routes"
	"github.com/lizet96/citas-backend/store"
)

func newApp(t *testing.T, s store.CitaStore) *fiber.App {
	t.Helper()
	cfg := config.New()
	cfg.StoreDriver = store.DriverMemory
	return routes.NewApp(routes.Deps{
		Config:  cfg,
		Store:   s,
		Metrics: metrics.NewManager(false),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func get(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp, string(b)
}

func TestRoot(t *testing.T) {
	app := newApp(t, store.NewMemoryStore())

	resp, body := get(t, app, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if body != "Servidor funcionando correctamente" {
		t.Errorf("unexpected body %q", body)
	}
	if resp.Header.Get(fiber.HeaderXRequestID) == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestCitasRoundTrip(t *testing.T) {
	app := newApp(t, store.NewMemoryStore())

	req := httptest.NewRequest(http.MethodPost, "/citas",
		strings.NewReader(`{"nombre":"Pedro","correo":"pedro@example.com","fecha":"2025-09-01","hora":"13:00"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, body := get(t, app, req)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", resp.StatusCode, body)
	}

	resp, body = get(t, app, httptest.NewRequest(http.MethodGet, "/citas/", nil))
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, `"nombre":"Pedro"`) {
		t.Errorf("list: %d %s", resp.StatusCode, body)
	}
}

func TestCORS(t *testing.T) {
	app := newApp(t, store.NewMemoryStore())

	req := httptest.NewRequest(http.MethodOptions, "/citas", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, _ := get(t, app, req)

	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("expected 204 preflight, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard origin, got %q", got)
	}
}

func TestNotFoundRoute(t *testing.T) {
	app := newApp(t, store.NewMemoryStore())

	resp, body := get(t, app, httptest.NewRequest(http.MethodGet, "/pacientes", nil))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Ruta no encontrada") {
		t.Errorf("unexpected body %s", body)
	}
}

type downStore struct{ *store.MemoryStore }

func (downStore) Ping(context.Context) error {
	return &store.InfraError{Op: "ping mongo", Err: errors.New("server selection timeout")}
}

func TestHealth(t *testing.T) {
	resp, body := get(t, newApp(t, store.NewMemoryStore()), httptest.NewRequest(http.MethodGet, "/health", nil))
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, `"store":"up"`) {
		t.Errorf("healthy store: %d %s", resp.StatusCode, body)
	}

	resp, body = get(t, newApp(t, downStore{store.NewMemoryStore()}), httptest.NewRequest(http.MethodGet, "/health", nil))
	if resp.StatusCode != http.StatusServiceUnavailable || !strings.Contains(body, `"store":"down"`) {
		t.Errorf("down store: %d %s", resp.StatusCode, body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	app := newApp(t, store.NewMemoryStore())

	get(t, app, httptest.NewRequest(http.MethodGet, "/citas/123", nil))
	resp, body := get(t, app, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, `citas_store_operations_total{operation="obtener",result="not_found"} 1`) {
		t.Errorf("store metric missing:\n%s", body)
	}
}
