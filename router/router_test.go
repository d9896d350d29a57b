// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-pick-web/metrics"
	"github.com/danielhkuo/quickly-pick-web/storage"
	"github.com/danielhkuo/quickly-pick-web/testutil"
)

func setupRouter(t *testing.T, status int) (http.Handler, storage.Backend, *testutil.Backend) {
	t.Helper()

	api := testutil.NewBackend(t, status)
	backend := testutil.SetupTestBackend(t)
	mux := NewRouter(backend, testutil.GetTestConfig(api.URL), metrics.NewRegistry())

	return mux, backend, api
}

func TestHealthEndpoint(t *testing.T) {
	mux, _, _ := setupRouter(t, http.StatusOK)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux, _, _ := setupRouter(t, http.StatusOK)

	// Guarded pages may redirect, API routes may reject the body.
	// Neither should be 405.
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/metrics"},

		// Pages
		{"GET", "/"},
		{"GET", "/home"},
		{"GET", "/login"},
		{"GET", "/signup"},
		{"GET", "/create-poll"},
		{"GET", "/poll/test-id"},

		// Client storage
		{"GET", "/api/storage/token"},
		{"PUT", "/api/storage/token"},
		{"DELETE", "/api/storage/token"},

		// Notifications
		{"POST", "/api/notifications"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux, _, _ := setupRouter(t, http.StatusOK)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"POST", "/home"},
		{"DELETE", "/poll/test-id"},
		{"POST", "/api/storage/token"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestGuardRedirects(t *testing.T) {
	mux, backend, _ := setupRouter(t, http.StatusOK)
	clientID := testutil.NewClientID(t, backend, map[string]string{"token": "tok", "username": "alice"})

	testCases := []struct {
		name     string
		path     string
		session  bool
		location string
		status   int
	}{
		{"protected without session", "/home", false, "/login", http.StatusFound},
		{"poll without session", "/poll/p1", false, "/login", http.StatusFound},
		{"unknown without session", "/nowhere", false, "/login", http.StatusFound},
		{"login with session", "/login", true, "/home", http.StatusFound},
		{"landing without session", "/", false, "", http.StatusOK},
		{"signup without session", "/signup", false, "", http.StatusOK},
		{"login without session", "/login", false, "", http.StatusOK},
		{"protected with session", "/home", true, "", http.StatusOK},
		{"unknown with session", "/nowhere", true, "", http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.WithClient(testutil.MakeRequest("GET", tc.path, nil, nil), clientID)
			if tc.session {
				req = testutil.WithSession(req)
			}
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if tc.location != "" {
				testutil.AssertRedirect(t, w, tc.location)
				return
			}
			testutil.AssertStatus(t, w, tc.status)
		})
	}
}

func TestSessionTeardownEndToEnd(t *testing.T) {
	mux, backend, api := setupRouter(t, http.StatusUnauthorized)
	clientID := testutil.NewClientID(t, backend, map[string]string{"token": "expired", "username": "alice"})

	req := testutil.WithSession(testutil.WithClient(testutil.MakeRequest("GET", "/create-poll", nil, nil), clientID))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	testutil.AssertRedirect(t, w, "/login")
	if tokens := api.Tokens(); len(tokens) != 1 || tokens[0] != "expired" {
		t.Errorf("expected one check with the stored token, got %v", tokens)
	}

	// Stored credentials are gone, so the next check has nothing to send
	api.SetStatus(http.StatusOK)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.WithSession(testutil.WithClient(testutil.MakeRequest("GET", "/create-poll", nil, nil), clientID)))

	testutil.AssertRedirect(t, w, "/login")
	if len(api.Tokens()) != 1 {
		t.Error("backend should not be called without a stored token")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	mux, _, _ := setupRouter(t, http.StatusOK)

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/home", nil))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	body := w.Body.String()
	if !strings.Contains(body, `quickly_pick_web_guard_decisions_total{outcome="redirect",route="home"} 1`) {
		t.Errorf("expected guard redirect counter, got:\n%s", body)
	}
}

func TestCORS(t *testing.T) {
	api := testutil.NewBackend(t, http.StatusOK)
	cfg := testutil.GetTestConfig(api.URL)
	cfg.AllowedOrigins = []string{"https://quickly-pick.example"}
	mux := NewRouter(testutil.SetupTestBackend(t), cfg, metrics.NewRegistry())

	req := testutil.MakeRequest("GET", "/health", nil, map[string]string{"Origin": "https://quickly-pick.example"})
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://quickly-pick.example" {
		t.Errorf("expected allowed origin echoed, got %q", got)
	}

	req = testutil.MakeRequest("GET", "/health", nil, map[string]string{"Origin": "https://evil.example"})
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unexpected origin echoed: %q", got)
	}
}
