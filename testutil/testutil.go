// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-pick-web/auth"
	"github.com/danielhkuo/quickly-pick-web/cliparse"
	"github.com/danielhkuo/quickly-pick-web/db"
	"github.com/danielhkuo/quickly-pick-web/storage"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestBackend returns sqlite-backed client storage
func SetupTestBackend(t *testing.T) storage.Backend {
	t.Helper()
	return storage.NewSQL(SetupTestDB(t))
}

// GetTestConfig returns a standard test configuration pointing at baseURL
func GetTestConfig(baseURL string) cliparse.Config {
	return cliparse.Config{
		Port:        3318,
		BaseURL:     baseURL,
		StorageType: cliparse.StorageSQLite,
		DatabaseURL: ":memory:",
		APITimeout:  2 * time.Second,
	}
}

// Backend fakes the API server's /get-user-token endpoint
type Backend struct {
	*httptest.Server

	mu     sync.Mutex
	status int
	tokens []string
}

// NewBackend starts a fake backend that answers with status
func NewBackend(t *testing.T, status int) *Backend {
	t.Helper()

	b := &Backend{status: status}
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/get-user-token" {
			http.NotFound(w, r)
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		token, _ := auth.ParseBearer(r.Header.Get("Authorization"))
		b.tokens = append(b.tokens, token)
		w.WriteHeader(b.status)
	}))
	t.Cleanup(b.Close)

	return b
}

// SetStatus changes the status returned from now on
func (b *Backend) SetStatus(status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.status = status
}

// Tokens returns the bearer tokens seen so far
func (b *Backend) Tokens() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.tokens))
	copy(out, b.tokens)
	return out
}

// NewClientID returns a client id already holding the given values
func NewClientID(t *testing.T, backend storage.Backend, values map[string]string) string {
	t.Helper()

	id := auth.NewClientID()
	store := backend.Store(id)
	for k, v := range values {
		if err := store.Set(context.Background(), k, v); err != nil {
			t.Fatalf("Failed to seed client storage: %v", err)
		}
	}
	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// WithClient attaches the client id cookie
func WithClient(req *http.Request, clientID string) *http.Request {
	req.AddCookie(&http.Cookie{Name: auth.ClientCookieName, Value: clientID})
	return req
}

// WithSession attaches a session cookie
func WithSession(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "test-csrf"})
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a 302 to location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	AssertStatus(t, w, http.StatusFound)
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %q, got %q", location, got)
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
