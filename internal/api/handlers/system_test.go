package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/etfgrowth/analyzer/internal/api/handlers"
)

// TestSystemHandler tests the liveness and version endpoints.
func TestSystemHandler(t *testing.T) {
	h := handlers.NewSystemHandler()

	t.Run("health reports healthy", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		w := httptest.NewRecorder()

		h.Health(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var body handlers.HealthResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if body.Status != "healthy" {
			t.Errorf("Expected status 'healthy', got %q", body.Status)
		}
	})

	t.Run("version reports the build version", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/system/version", nil)
		w := httptest.NewRecorder()

		h.Version(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var body handlers.VersionResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if body.AppVersion == "" {
			t.Error("Expected a non-empty app version")
		}
	})
}

// TestSymbolsHandler tests the preset ETF list endpoint.
func TestSymbolsHandler(t *testing.T) {
	h := handlers.NewSymbolsHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/symbols", nil)
	w := httptest.NewRecorder()

	h.Symbols(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var body struct {
		Symbols []string `json:"symbols"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body.Symbols) == 0 {
		t.Fatal("Expected a non-empty symbol list")
	}
	if body.Symbols[0] != "SPY" {
		t.Errorf("Expected SPY first, got %q", body.Symbols[0])
	}
}
