// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-pick-web/auth"
	"github.com/danielhkuo/quickly-pick-web/metrics"
	"github.com/danielhkuo/quickly-pick-web/models"
	"github.com/danielhkuo/quickly-pick-web/storage"
)

// LoginPath is where a torn-down session is sent
const LoginPath = "/login"

// UserTokenPath is the backend endpoint that accepts a valid bearer token
const UserTokenPath = "/get-user-token"

// ErrTransport means the backend could not be reached. The session is left intact.
var ErrTransport = errors.New("session check transport failure")

// Navigator moves the client to another page
type Navigator interface {
	Navigate(path string)
}

// Validator checks a client's stored token against the backend
type Validator struct {
	BaseURL string
	Client  *http.Client
	Metrics *metrics.Metrics
}

func NewValidator(baseURL string, client *http.Client, m *metrics.Metrics) *Validator {
	if client == nil {
		client = http.DefaultClient
	}
	return &Validator{BaseURL: baseURL, Client: client, Metrics: m}
}

// Check tears the session down (clears token and username, navigates to
// /login) when no token is stored or the backend answers anything but 200.
// A 200 leaves everything untouched; the body is ignored.
// Storage and transport failures are returned without teardown.
func (v *Validator) Check(ctx context.Context, store storage.Store, nav Navigator) error {
	token, ok, err := store.Get(ctx, models.KeyToken)
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}
	if !ok || token == "" {
		v.count(metrics.SessionNoToken)
		return Teardown(ctx, store, nav)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.BaseURL+UserTokenPath, nil)
	if err != nil {
		return fmt.Errorf("failed to build session check request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", auth.BearerHeader(token))

	resp, err := v.Client.Do(req)
	if err != nil {
		v.count(metrics.SessionTransport)
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.count(metrics.SessionRejected)
		slog.Info("session token rejected", "status", resp.StatusCode)
		return Teardown(ctx, store, nav)
	}

	v.count(metrics.SessionValid)
	return nil
}

func (v *Validator) count(outcome string) {
	if v.Metrics != nil {
		v.Metrics.SessionChecks.WithLabelValues(outcome).Inc()
	}
}

// Teardown clears the stored session and sends the client to the login page
func Teardown(ctx context.Context, store storage.Store, nav Navigator) error {
	if err := store.Remove(ctx, models.KeyToken); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	if err := store.Remove(ctx, models.KeyUsername); err != nil {
		return fmt.Errorf("failed to clear username: %w", err)
	}
	nav.Navigate(LoginPath)
	return nil
}

// HTTPNavigator answers the current request with a redirect
type HTTPNavigator struct {
	w          http.ResponseWriter
	r          *http.Request
	redirected bool
}

func NewHTTPNavigator(w http.ResponseWriter, r *http.Request) *HTTPNavigator {
	return &HTTPNavigator{w: w, r: r}
}

func (n *HTTPNavigator) Navigate(path string) {
	if n.redirected {
		return
	}
	n.redirected = true
	http.Redirect(n.w, n.r, path, http.StatusFound)
}

// Redirected reports whether a response has already been written
func (n *HTTPNavigator) Redirected() bool {
	return n.redirected
}
