package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func serve(t *testing.T, h echo.HandlerFunc) (*httptest.ResponseRecorder, readinessResponse) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var body readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec, body
}

func TestLiveness(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadiness_NoDependencies(t *testing.T) {
	rec, body := serve(t, NewReadinessHandler(29, nil).Readiness)
	if rec.Code != http.StatusOK || body.Status != "ok" || body.Routes != 29 {
		t.Fatalf("unexpected readiness: %d %+v", rec.Code, body)
	}
}

func TestReadiness_DependencyDown(t *testing.T) {
	h := NewReadinessHandler(29, map[string]Pinger{
		"mongodb": stubPinger{},
		"redis":   stubPinger{err: errors.New("connection refused")},
	})
	rec, body := serve(t, h.Readiness)
	if rec.Code != http.StatusServiceUnavailable || body.Status != "degraded" {
		t.Fatalf("expected degraded, got %d %+v", rec.Code, body)
	}
	if body.Dependencies["mongodb"].Status != "ok" {
		t.Errorf("mongodb should be ok: %+v", body.Dependencies["mongodb"])
	}
	if d := body.Dependencies["redis"]; d.Status != "unhealthy" || d.Error != "connection refused" {
		t.Errorf("unexpected redis status: %+v", d)
	}
}

func TestReadiness_EmptyTable(t *testing.T) {
	rec, _ := serve(t, NewReadinessHandler(0, nil).Readiness)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 for empty table, got %d", rec.Code)
	}
}
