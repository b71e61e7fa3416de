package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestHandler_Check(t *testing.T) {
	h := NewHandler(nil, "development", zap.NewNop())
	router := Routes(h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET / status = %d, want 200", rec.Code)
	}
	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("Check() success = false, want true")
	}
	if resp.Message != "API is running" {
		t.Errorf("Check() message = %q, want %q", resp.Message, "API is running")
	}
	if resp.Environment != "development" {
		t.Errorf("Check() environment = %q, want development", resp.Environment)
	}
	if resp.Timestamp == "" {
		t.Error("Check() timestamp empty")
	}
}

func TestHandler_Live(t *testing.T) {
	h := NewHandler(nil, "development", zap.NewNop())
	router := Routes(h)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /live status = %d, want 200", rec.Code)
	}
	var resp Response
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Message != "alive" {
		t.Errorf("Live() = {success: %v, message: %q}, want {true, alive}", resp.Success, resp.Message)
	}
}
