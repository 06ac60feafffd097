package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/angelmondragon/salesboard/pkg/config"
	"github.com/angelmondragon/salesboard/pkg/logger"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error {
	return f.err
}

func testConfig() *config.Config {
	return &config.Config{App: config.AppConfig{Env: "test"}}
}

func TestHealthLive(t *testing.T) {
	resp := httptest.NewRecorder()
	HealthLive(testConfig()).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	if got := resp.Header().Get("X-Salesboard-Env"); got != "test" {
		t.Fatalf("expected env header, got %q", got)
	}
}

func TestHealthReadyWithoutRedis(t *testing.T) {
	resp := httptest.NewRecorder()
	HealthReady(testConfig(), logger.Nop(), nil).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	if strings.Contains(resp.Body.String(), "redis") {
		t.Fatalf("redis check should be skipped: %s", resp.Body.String())
	}
}

func TestHealthReadyPingsRedis(t *testing.T) {
	resp := httptest.NewRecorder()
	HealthReady(testConfig(), logger.Nop(), fakePinger{}).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	HealthReady(testConfig(), logger.Nop(), fakePinger{err: errors.New("dial tcp: refused")}).
		ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "DEPENDENCY_ERROR") {
		t.Fatalf("expected dependency error code: %s", resp.Body.String())
	}
}
