package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newFilteredEngine(origins []string, handled *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(OriginFilter(origins))
	handler := func(c *gin.Context) {
		*handled = true
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
	r.GET("/session-status", handler)
	r.POST("/create-checkout-session", handler)
	return r
}

func TestOriginFilterAllowsAbsentOrigin(t *testing.T) {
	var handled bool
	r := newFilteredEngine([]string{"https://good.example"}, &handled)

	req := httptest.NewRequest(http.MethodGet, "/session-status", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for request without Origin, got %d", w.Code)
	}
	if !handled {
		t.Error("expected handler to run for request without Origin")
	}
}

func TestOriginFilterAllowsListedOrigin(t *testing.T) {
	var handled bool
	r := newFilteredEngine([]string{"https://good.example"}, &handled)

	req := httptest.NewRequest(http.MethodGet, "/session-status", nil)
	req.Header.Set("Origin", "https://good.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://good.example" {
		t.Errorf("Access-Control-Allow-Origin = %q, want the request origin", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "" {
		t.Errorf("credentials must never be allowed cross-origin, got %q", got)
	}
}

func TestOriginFilterRejectsUnknownOrigin(t *testing.T) {
	var handled bool
	r := newFilteredEngine([]string{"https://good.example"}, &handled)

	req := httptest.NewRequest(http.MethodPost, "/create-checkout-session", strings.NewReader(`{"price_cents":1000}`))
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
	if handled {
		t.Error("handler must not run for a rejected origin")
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if !strings.Contains(body["error"], "https://evil.example") {
		t.Errorf("error should confirm the rejected origin, got %q", body["error"])
	}
	if strings.Contains(body["error"], "https://good.example") {
		t.Errorf("error must not leak the allow-list, got %q", body["error"])
	}
}

func TestOriginFilterMatchesExactly(t *testing.T) {
	cases := []string{
		"https://GOOD.example",      // case differs
		"https://sub.good.example",  // subdomain
		"https://good.example:8443", // port differs
		"https://good.example/",     // trailing slash
	}

	for _, origin := range cases {
		t.Run(origin, func(t *testing.T) {
			var handled bool
			r := newFilteredEngine([]string{"https://good.example"}, &handled)

			req := httptest.NewRequest(http.MethodGet, "/session-status", nil)
			req.Header.Set("Origin", origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusForbidden {
				t.Errorf("expected 403 for origin %q, got %d", origin, w.Code)
			}
			if handled {
				t.Errorf("handler must not run for origin %q", origin)
			}
		})
	}
}

func TestOriginFilterHandlesPreflight(t *testing.T) {
	var handled bool
	r := newFilteredEngine([]string{"https://good.example"}, &handled)

	req := httptest.NewRequest(http.MethodOptions, "/create-checkout-session", nil)
	req.Header.Set("Origin", "https://good.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 preflight response, got %d", w.Code)
	}
	if handled {
		t.Error("preflight must not reach the handler")
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST, OPTIONS" {
		t.Errorf("Access-Control-Allow-Methods = %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type, Authorization" {
		t.Errorf("Access-Control-Allow-Headers = %q", got)
	}
}
