package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthHandler(t *testing.T) {
	server := newTestServer()

	t.Run("Ping", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/ping", nil)
		server.Handler().ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", w.Code)
		}

		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["message"] != "pong" {
			t.Errorf("expected pong, got %v", resp["message"])
		}
	})

	t.Run("Health", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/health", nil)
		server.Handler().ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected status 200, got %d", w.Code)
		}

		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["health"] != "ok" {
			t.Errorf("expected ok, got %v", resp["health"])
		}
		if resp["sessions"] != float64(0) {
			t.Errorf("expected 0 sessions, got %v", resp["sessions"])
		}
	})

	t.Run("Rules", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/rules", nil)
		server.Handler().ServeHTTP(w, req)

		var resp struct {
			Rules map[string]float64 `json:"rules"`
		}
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Rules["banker_payout"] != 0.95 || resp.Rules["min_win_rate"] != 0.55 {
			t.Errorf("unexpected rules %v", resp.Rules)
		}
	})
}
