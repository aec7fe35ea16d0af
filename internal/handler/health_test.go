package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare-catalog/internal/testutil"
)

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(testutil.NewTestDB(t), time.Now().Add(-time.Minute), "test")

	w := doRequest(t, router, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	resp := decode[map[string]any](t, w)
	if resp["status"] != "ok" || resp["version"] != "test" {
		t.Errorf("unexpected health body %v", resp)
	}
	if uptime, _ := resp["uptime"].(float64); uptime < 60 {
		t.Errorf("expected uptime >= 60s, got %v", resp["uptime"])
	}
}

func TestReady_DBUp(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(testutil.NewTestDB(t), time.Now(), "test")

	w := doRequest(t, router, http.MethodGet, "/ready", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	resp := decode[map[string]any](t, w)
	if resp["status"] != "ready" {
		t.Errorf("unexpected ready body %v", resp)
	}
}

func TestReady_DBDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutil.NewTestDB(t)
	router := NewRouter(db, time.Now(), "test")

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	_ = sqlDB.Close()

	w := doRequest(t, router, http.MethodGet, "/ready", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestRoot_Banner(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(testutil.NewTestDB(t), time.Now(), "test")

	w := doRequest(t, router, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "running") {
		t.Errorf("unexpected banner %q", w.Body.String())
	}
}

func TestRouter_ServesBookRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(testutil.NewTestDB(t), time.Now(), "test")

	w := doRequest(t, router, http.MethodGet, "/books", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestCORS_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(testutil.NewTestDB(t), time.Now(), "test")

	req := httptest.NewRequest(http.MethodOptions, "/books", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected allow-origin *, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "PUT") {
		t.Errorf("expected PUT in allowed methods, got %q", got)
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(testutil.NewTestDB(t), time.Now(), "test")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get(requestIDHeader); got != "abc-123" {
		t.Errorf("expected request id to be echoed, got %q", got)
	}

	w = doRequest(t, router, http.MethodGet, "/health", nil)
	if got := w.Header().Get(requestIDHeader); len(got) != 36 {
		t.Errorf("expected a generated uuid request id, got %q", got)
	}
}
