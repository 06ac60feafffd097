package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	pkgerrors "github.com/angelmondragon/salesboard/pkg/errors"
	"github.com/angelmondragon/salesboard/pkg/logger"
	"github.com/angelmondragon/salesboard/pkg/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestWriteRateLimit_AllowsReads(t *testing.T) {
	store := newFakeRateStore()
	handler := WriteRateLimit(NewWriteRateLimitPolicy(time.Minute, 1), store, nil)(http.HandlerFunc(okHandler))

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected reads to pass, got %d", rec.Code)
		}
	}
	if len(store.counts) != 0 {
		t.Fatalf("reads should not touch the store, got %v", store.counts)
	}
}

func TestWriteRateLimit_LimitTriggers(t *testing.T) {
	store := newFakeRateStore()
	handler := WriteRateLimit(NewWriteRateLimitPolicy(time.Minute, 2), store, nil)(http.HandlerFunc(okHandler))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(`{}`))
		req.RemoteAddr = "1.2.3.4:5678"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		switch {
		case i < 2 && rec.Code != http.StatusOK:
			t.Fatalf("expected success before limit, got %d", rec.Code)
		case i >= 2:
			if rec.Code != http.StatusTooManyRequests {
				t.Fatalf("expected 429, got %d", rec.Code)
			}
			var payload struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
				t.Fatalf("decode error: %v", err)
			}
			if payload.Error.Code != string(pkgerrors.CodeRateLimit) {
				t.Fatalf("unexpected code: %s", payload.Error.Code)
			}
		}
	}
	if store.counts["write:1.2.3.4"] != 3 {
		t.Fatalf("expected per-ip scope, got %v", store.counts)
	}
}

func TestWriteRateLimit_StoreFailureIsDependencyError(t *testing.T) {
	store := newFakeRateStore()
	store.err = errors.New("redis down")
	handler := WriteRateLimit(NewWriteRateLimitPolicy(time.Minute, 2), store, nil)(http.HandlerFunc(okHandler))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/products/prod-1/inventory", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestWriteRateLimit_DisabledPassesThrough(t *testing.T) {
	handler := WriteRateLimit(NewWriteRateLimitPolicy(0, 0), nil, nil)(http.HandlerFunc(okHandler))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected pass-through, got %d", rec.Code)
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "9.9.9.9:1234"
	if got := clientIP(req); got != "9.9.9.9" {
		t.Fatalf("expected remote addr host, got %s", got)
	}
	req.Header.Set("X-Real-IP", "8.8.8.8")
	if got := clientIP(req); got != "8.8.8.8" {
		t.Fatalf("expected X-Real-IP, got %s", got)
	}
	req.Header.Set("X-Forwarded-For", " 7.7.7.7, 6.6.6.6")
	if got := clientIP(req); got != "7.7.7.7" {
		t.Fatalf("expected first forwarded ip, got %s", got)
	}
}

func TestRequestIDGeneratesAndPropagates(t *testing.T) {
	var seen string
	handler := RequestID(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("expected generated uuid, got %q", seen)
	}
	if rec.Header().Get(requestIDHeader) != seen {
		t.Fatalf("response header should echo request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "  caller-123  ")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if seen != "caller-123" {
		t.Fatalf("expected caller id to be kept, got %q", seen)
	}
}

func TestRecovererReturnsInternalError(t *testing.T) {
	buf := &bytes.Buffer{}
	logg := logger.New(logger.Options{ServiceName: "test", Output: buf})
	handler := Recoverer(logg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("kaboom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !bytes.Contains(buf.Bytes(), []byte("kaboom")) {
		t.Fatalf("expected panic value in log, got %s", buf.String())
	}
}

func TestLoggingRecordsStatus(t *testing.T) {
	buf := &bytes.Buffer{}
	logg := logger.New(logger.Options{ServiceName: "test", Output: buf})
	handler := Logging(logg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/brew", nil))
	if !bytes.Contains(buf.Bytes(), []byte(`"status":418`)) {
		t.Fatalf("expected status in log entry, got %s", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"path":"/brew"`)) {
		t.Fatalf("expected path in log entry, got %s", buf.String())
	}
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	router := chi.NewRouter()
	router.Use(Metrics(metrics.NewHTTPMetrics(reg)))
	router.Get("/products/{productId}", okHandler)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/products/prod-1", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/products/prod-2", nil))

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	var found bool
	for _, mf := range mfs {
		if mf.GetName() != "http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() == "route" && label.GetValue() == "/products/{productId}" {
					found = true
					if m.GetCounter().GetValue() != 2 {
						t.Fatalf("expected 2 requests on pattern, got %f", m.GetCounter().GetValue())
					}
				}
			}
		}
	}
	if !found {
		t.Fatalf("expected route pattern label")
	}
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	handler := CORS([]string{"https://dash.example.com"})(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/dashboard", nil)
	req.Header.Set("Origin", "https://dash.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://dash.example.com" {
		t.Fatalf("expected origin to be allowed, got %q", got)
	}
}

type fakeRateStore struct {
	mu     sync.Mutex
	counts map[string]int64
	err    error
}

func newFakeRateStore() *fakeRateStore {
	return &fakeRateStore{counts: map[string]int64{}}
}

func (f *fakeRateStore) FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, 0, f.err
	}
	f.counts[scope]++
	return f.counts[scope] <= limit, f.counts[scope], nil
}
