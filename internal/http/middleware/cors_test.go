package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func runCORS(t *testing.T, origins []string, method, origin, preflightMethod string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(method, "/api/chat", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	if preflightMethod != "" {
		req.Header.Set("Access-Control-Request-Method", preflightMethod)
	}
	rec := httptest.NewRecorder()

	CORS(origins)(handler).ServeHTTP(rec, req)
	return rec, called
}

func TestCORSListedOrigin(t *testing.T) {
	rec, called := runCORS(t, []string{"https://portal.healthbridge.example"}, http.MethodPost, "https://portal.healthbridge.example", "")

	if !called {
		t.Fatalf("expected handler to be called")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://portal.healthbridge.example" {
		t.Fatalf("expected origin echoed back, got %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST, OPTIONS" {
		t.Fatalf("unexpected allow methods %q", got)
	}
	if rec.Header().Get("Access-Control-Allow-Headers") == "" {
		t.Fatalf("expected allow headers header")
	}
}

func TestCORSUnlistedOrigin(t *testing.T) {
	rec, called := runCORS(t, []string{"https://portal.healthbridge.example"}, http.MethodPost, "https://evil.example", "")

	if !called {
		t.Fatalf("expected handler to still be called")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no allow origin header, got %q", got)
	}
}

func TestCORSWildcard(t *testing.T) {
	rec, _ := runCORS(t, []string{"*"}, http.MethodGet, "http://localhost:5173", "")

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("expected origin echoed back under wildcard, got %q", got)
	}
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	rec, called := runCORS(t, []string{"https://portal.healthbridge.example"}, http.MethodOptions, "https://portal.healthbridge.example", "POST")

	if called {
		t.Fatalf("preflight must not reach the handler")
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
}

func TestCORSNoOriginHeader(t *testing.T) {
	rec, called := runCORS(t, []string{"https://portal.healthbridge.example"}, http.MethodGet, "", "")

	if !called {
		t.Fatalf("expected handler to be called")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no CORS headers without an Origin, got %q", got)
	}
}
