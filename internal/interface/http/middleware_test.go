package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"baccarat-ev/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func TestWithSession(t *testing.T) {
	server := newTestServer()

	var seen string
	router := gin.New()
	router.GET("/probe", server.withSession(), func(c *gin.Context) {
		seen = sessionID(c)
		c.Status(http.StatusOK)
	})

	t.Run("IssuesCookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/probe", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if seen == "" {
			t.Error("expected session id in context")
		}
		cookies := w.Result().Cookies()
		if len(cookies) != 1 || cookies[0].Name != sessionCookieName || !cookies[0].HttpOnly {
			t.Errorf("unexpected cookies %+v", cookies)
		}
	})

	t.Run("ReusesValidCookie", func(t *testing.T) {
		issued, err := server.tokens.Issue()
		if err != nil {
			t.Fatal(err)
		}
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/probe", nil)
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: issued.Token})
		router.ServeHTTP(w, req)

		if seen != issued.SessionID {
			t.Errorf("expected %s, got %s", issued.SessionID, seen)
		}
		if len(w.Result().Cookies()) != 0 {
			t.Error("valid cookie should not be reissued")
		}
	})
}

func TestCORSMiddleware(t *testing.T) {
	cfg := config.Config{}
	cfg.Session.Secret = "test-secret"
	cfg.HTTP.AllowedOrigins = []string{"http://localhost:3000"}
	server := NewServer(cfg, nil)

	preflight := func(origin string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodOptions, "/api/tracker", nil)
		req.Header.Set("Origin", origin)
		server.Handler().ServeHTTP(w, req)
		return w
	}

	t.Run("AllowedOrigin", func(t *testing.T) {
		w := preflight("http://localhost:3000")
		if w.Code != http.StatusNoContent {
			t.Errorf("expected 204, got %d", w.Code)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("unexpected allow origin %q", got)
		}
		if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
			t.Errorf("expected credentials allowed, got %q", got)
		}
	})

	t.Run("UnknownOrigin", func(t *testing.T) {
		w := preflight("https://evil.example")
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("unknown origin must not be echoed, got %q", got)
		}
		if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "" {
			t.Errorf("unknown origin must not get credentials, got %q", got)
		}
	})

	t.Run("SameOriginDefault", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		newTestServer().Handler().ServeHTTP(w, req)
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("no origins configured, got %q", got)
		}
	})
}
