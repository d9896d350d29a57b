// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-pick-web/guard"
	"github.com/danielhkuo/quickly-pick-web/metrics"
	"github.com/danielhkuo/quickly-pick-web/middleware"
	"github.com/danielhkuo/quickly-pick-web/models"
	"github.com/danielhkuo/quickly-pick-web/notify"
	"github.com/danielhkuo/quickly-pick-web/routes"
	"github.com/danielhkuo/quickly-pick-web/session"
	"github.com/danielhkuo/quickly-pick-web/storage"
	"github.com/danielhkuo/quickly-pick-web/testutil"
	"github.com/danielhkuo/quickly-pick-web/views"
)

type pageFixture struct {
	handler  http.Handler
	backend  storage.Backend
	contexts *session.Contexts
	api      *testutil.Backend
	table    *routes.Table
}

func setupPages(t *testing.T, status int, loaders map[string]views.Loader) *pageFixture {
	t.Helper()

	api := testutil.NewBackend(t, status)
	backend := testutil.SetupTestBackend(t)
	contexts := session.NewContexts()
	table := routes.Default(loaders)
	validator := session.NewValidator(api.URL, &http.Client{Timeout: time.Second}, metrics.Nop())
	h := NewPageHandler(routes.NewRegistry(table), guard.New(), validator, backend, contexts)

	mux := http.NewServeMux()
	for _, route := range table.Routes() {
		mux.Handle(routes.Pattern(route), h.Serve(route))
	}
	mux.HandleFunc("GET /", h.NotFound)

	return &pageFixture{
		handler:  middleware.WithClient(mux),
		backend:  backend,
		contexts: contexts,
		api:      api,
		table:    table,
	}
}

func TestServe_PublicPageSkipsSessionCheck(t *testing.T) {
	f := setupPages(t, http.StatusUnauthorized, views.Loaders())
	clientID := testutil.NewClientID(t, f.backend, map[string]string{"username": "alice"})

	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, testutil.WithClient(testutil.MakeRequest("GET", "/login", nil, nil), clientID))

	testutil.AssertStatus(t, w, http.StatusOK)
	if len(f.api.Tokens()) != 0 {
		t.Error("public pages must not call the backend")
	}
	if !strings.Contains(w.Body.String(), `data-view="login"`) {
		t.Errorf("expected login view, got %s", w.Body.String())
	}
}

func TestServe_ValidTokenRendersWithDisplayName(t *testing.T) {
	f := setupPages(t, http.StatusOK, views.Loaders())
	clientID := testutil.NewClientID(t, f.backend, map[string]string{"token": "tok-1", "username": "alice"})

	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, testutil.WithClient(testutil.MakeRequest("GET", "/home", nil, nil), clientID))

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "Welcome back, alice") {
		t.Errorf("expected display name in page, got %s", w.Body.String())
	}
	if tokens := f.api.Tokens(); len(tokens) != 1 || tokens[0] != "tok-1" {
		t.Errorf("expected backend to see tok-1, got %v", tokens)
	}

	// storage untouched
	store := f.backend.Store(clientID)
	if v, _, _ := store.Get(context.Background(), "token"); v != "tok-1" {
		t.Error("token should be kept on a valid session")
	}
}

func TestServe_DisplayNameSyncedOnce(t *testing.T) {
	f := setupPages(t, http.StatusOK, views.Loaders())
	clientID := testutil.NewClientID(t, f.backend, map[string]string{"token": "tok", "username": "alice"})

	f.handler.ServeHTTP(httptest.NewRecorder(), testutil.WithClient(testutil.MakeRequest("GET", "/home", nil, nil), clientID))

	f.backend.Store(clientID).Set(context.Background(), "username", "mallory")

	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, testutil.WithClient(testutil.MakeRequest("GET", "/home", nil, nil), clientID))

	if !strings.Contains(w.Body.String(), "Welcome back, alice") {
		t.Errorf("display name should stay alice, got %s", w.Body.String())
	}
}

func TestServe_TeardownOnMissingToken(t *testing.T) {
	f := setupPages(t, http.StatusOK, views.Loaders())
	clientID := testutil.NewClientID(t, f.backend, map[string]string{"username": "alice"})
	if _, err := f.contexts.Sync(context.Background(), clientID, f.backend.Store(clientID)); err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, testutil.WithClient(testutil.MakeRequest("GET", "/create-poll", nil, nil), clientID))

	testutil.AssertRedirect(t, w, "/login")
	if _, ok, _ := f.backend.Store(clientID).Get(context.Background(), "username"); ok {
		t.Error("username should be cleared")
	}
	if _, ok := f.contexts.Lookup(clientID); ok {
		t.Error("session context should be reset after teardown")
	}
}

func TestServe_TeardownOnRejectedToken(t *testing.T) {
	f := setupPages(t, http.StatusUnauthorized, views.Loaders())
	clientID := testutil.NewClientID(t, f.backend, map[string]string{"token": "stale", "username": "alice"})

	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, testutil.WithClient(testutil.MakeRequest("GET", "/poll/p1", nil, nil), clientID))

	testutil.AssertRedirect(t, w, "/login")
	store := f.backend.Store(clientID)
	for _, key := range []string{"token", "username"} {
		if _, ok, _ := store.Get(context.Background(), key); ok {
			t.Errorf("%s should be cleared", key)
		}
	}
}

func TestServe_BackendDown(t *testing.T) {
	f := setupPages(t, http.StatusOK, views.Loaders())
	f.api.Close()
	clientID := testutil.NewClientID(t, f.backend, map[string]string{"token": "tok", "username": "alice"})

	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, testutil.WithClient(testutil.MakeRequest("GET", "/home", nil, nil), clientID))

	testutil.AssertStatus(t, w, http.StatusBadGateway)
	if v, _, _ := f.backend.Store(clientID).Get(context.Background(), "token"); v != "tok" {
		t.Error("token should survive a transport failure")
	}
}

func TestServe_AnonymousVisitorsLeaveNoContexts(t *testing.T) {
	f := setupPages(t, http.StatusOK, views.Loaders())

	for _, path := range []string{"/", "/login", "/signup"} {
		for i := 0; i < 20; i++ {
			w := httptest.NewRecorder()
			f.handler.ServeHTTP(w, testutil.MakeRequest("GET", path, nil, nil))
			testutil.AssertStatus(t, w, http.StatusOK)
		}
	}

	if n := f.contexts.Len(); n != 0 {
		t.Errorf("expected no session contexts for cookieless visitors, got %d", n)
	}
}

func TestServe_LoginEchoesCSRFToken(t *testing.T) {
	f := setupPages(t, http.StatusOK, views.Loaders())

	for _, path := range []string{"/login", "/signup"} {
		t.Run(path, func(t *testing.T) {
			req := testutil.MakeRequest("GET", path, nil, nil)
			req.AddCookie(&http.Cookie{Name: "csrf_token", Value: "abc%2Fdef%3D"})
			w := httptest.NewRecorder()
			f.handler.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)
			if !strings.Contains(w.Body.String(), `name="csrf_token" value="abc/def="`) {
				t.Errorf("expected decoded csrf token in form, got %s", w.Body.String())
			}
		})
	}

	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, testutil.MakeRequest("GET", "/login", nil, nil))
	if strings.Contains(w.Body.String(), `name="csrf_token"`) {
		t.Error("no csrf field expected without the cookie")
	}
}

func TestServe_PollParams(t *testing.T) {
	f := setupPages(t, http.StatusOK, views.Loaders())
	clientID := testutil.NewClientID(t, f.backend, map[string]string{"token": "tok"})

	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, testutil.WithClient(testutil.MakeRequest("GET", "/poll/abc123", nil, nil), clientID))

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "Poll abc123") {
		t.Errorf("expected poll id in page, got %s", w.Body.String())
	}
}

func TestServe_DrainsNotifications(t *testing.T) {
	f := setupPages(t, http.StatusOK, views.Loaders())
	clientID := testutil.NewClientID(t, f.backend, nil)
	notify.Show(context.Background(), notify.QueueSink{Queue: f.backend.Queue(clientID)}, "Welcome!", notify.WithSeverity(notify.Info))

	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, testutil.WithClient(testutil.MakeRequest("GET", "/", nil, nil), clientID))

	testutil.AssertStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "toast-info") {
		t.Errorf("expected notification in page, got %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	f.handler.ServeHTTP(w, testutil.WithClient(testutil.MakeRequest("GET", "/", nil, nil), clientID))
	if strings.Contains(w.Body.String(), "toast-info") {
		t.Error("notification should be shown only once")
	}
}

func TestServe_ViewLoadFailure(t *testing.T) {
	loaders := views.Loaders()
	loaders[models.RouteLanding] = func() (views.View, error) { return nil, errors.New("bundle missing") }
	f := setupPages(t, http.StatusOK, loaders)

	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, testutil.MakeRequest("GET", "/", nil, nil))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}

func TestServe_ViewLoadedLazily(t *testing.T) {
	calls := 0
	loaders := views.Loaders()
	inner := loaders[models.RouteSignup]
	loaders[models.RouteSignup] = func() (views.View, error) {
		calls++
		return inner()
	}
	f := setupPages(t, http.StatusOK, loaders)

	if calls != 0 {
		t.Fatal("view loaded before any navigation")
	}
	for i := 0; i < 3; i++ {
		f.handler.ServeHTTP(httptest.NewRecorder(), testutil.MakeRequest("GET", "/signup", nil, nil))
	}
	if calls != 1 {
		t.Errorf("signup view loaded %d times, want 1", calls)
	}
}

func TestNotFound(t *testing.T) {
	f := setupPages(t, http.StatusOK, views.Loaders())

	w := httptest.NewRecorder()
	f.handler.ServeHTTP(w, testutil.MakeRequest("GET", "/does-not-exist", nil, nil))

	testutil.AssertStatus(t, w, http.StatusNotFound)
	body, _ := io.ReadAll(w.Body)
	if !strings.Contains(string(body), "Page not found") {
		t.Errorf("unexpected body %s", body)
	}
}

func TestServe_RequiresClientID(t *testing.T) {
	h := NewPageHandler(routes.NewRegistry(routes.Default(views.Loaders())), guard.New(), nil, storage.NewMemory(), session.NewContexts())
	route, _ := routes.Default(views.Loaders()).Lookup(models.RouteLanding)

	w := httptest.NewRecorder()
	h.Serve(route)(w, testutil.MakeRequest("GET", "/", nil, nil))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}
