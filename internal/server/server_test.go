package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/smartshield/smartshield/internal/config"
	"github.com/smartshield/smartshield/internal/merchant"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testConfig returns a minimal config for testing
func testConfig() *config.Config {
	return &config.Config{
		Port:          "0",
		Env:           "development",
		LogLevel:      "error",
		SafeThreshold: 40,
		UnknownScore:  50,
		ListLimit:     50,
		RateLimitRPS:  1000,
	}
}

// newTestServer creates a server on in-memory storage
func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(testConfig(), WithStore(merchant.NewMemoryStore()))
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}
	return s
}

// ---------------------------------------------------------------------------
// Health endpoint tests
// ---------------------------------------------------------------------------

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	s.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if resp["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", resp["status"])
	}
}

func TestLivenessEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health/live", nil)
	s.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
}

func TestReadinessEndpoint(t *testing.T) {
	s := newTestServer(t)

	// Not ready until Run() marks it so
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health/ready", nil)
	s.router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 before startup, got %d", w.Code)
	}

	s.ready.Store(true)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/health/ready", nil)
	s.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 after ready, got %d", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	s.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "smartshield_") {
		t.Error("Expected smartshield metrics in output")
	}
}

func TestInfoEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	s.router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp["name"] != "smartshield" {
		t.Errorf("Expected name 'smartshield', got %v", resp["name"])
	}
}

// ---------------------------------------------------------------------------
// End-to-end scan flow
// ---------------------------------------------------------------------------

func TestScanFlow_EndToEnd(t *testing.T) {
	store := merchant.NewMemoryStore()
	if err := store.Create(context.Background(), &merchant.Merchant{
		Handle:     "starbucks@okhdfc",
		LegalName:  "Tata Starbucks Pvt Ltd",
		TrustScore: 98,
		Category:   "Food",
		Verified:   true,
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s, err := New(testConfig(), WithStore(store))
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}

	scan := func(qr string) (int, map[string]interface{}) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/v1/scan", strings.NewReader(`{"qr_text":"`+qr+`"}`))
		req.Header.Set("Content-Type", "application/json")
		s.Router().ServeHTTP(w, req)

		var resp map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		return w.Code, resp
	}

	// Known good merchant, graylist score above threshold
	code, resp := scan("starbucks@okhdfc")
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	if resp["status"] != "SAFE" {
		t.Errorf("Expected SAFE, got %v", resp["status"])
	}
	if resp["score"].(float64) != 98 {
		t.Errorf("Expected score 98, got %v", resp["score"])
	}

	// Keyword-laden unknown handle
	code, resp = scan("lottery-winner@upi")
	if code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", code)
	}
	if resp["status"] != "FRAUD" {
		t.Errorf("Expected FRAUD, got %v", resp["status"])
	}

	// The fraud handle is now in the registry
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/v1/merchants/lottery-winner@upi", nil)
	s.Router().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 for registered handle, got %d", w.Code)
	}

	// Stats reflect both records
	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/v1/stats", nil)
	s.Router().ServeHTTP(w, req)
	var stats map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("Failed to parse stats: %v", err)
	}
	if stats["merchants"].(float64) != 2 {
		t.Errorf("Expected 2 merchants, got %v", stats["merchants"])
	}
}

func TestSecurityHeadersApplied(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	s.router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header not set")
	}
}

func TestRequestIDPropagated(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Request-ID", "test-id-123")
	s.router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "test-id-123" {
		t.Errorf("X-Request-ID = %q, want test-id-123", got)
	}
}
