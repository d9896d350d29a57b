// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-pick-web/storage"
)

const (
	// SessionCookieName is set by the backend on login
	SessionCookieName = "csrf_token"

	// ClientCookieName identifies a browser for per-client storage
	ClientCookieName = "qp_client"
)

var ErrInvalidClientID = errors.New("invalid client id")

// HasSession reports whether cookies carry the session cookie.
// Only presence matters; the value is never inspected.
func HasSession(ctx context.Context, cookies storage.Store) bool {
	_, ok, err := cookies.Get(ctx, SessionCookieName)
	return err == nil && ok
}

// CSRFToken returns the decoded session cookie value
func CSRFToken(ctx context.Context, cookies storage.Store) (string, bool) {
	v, ok, err := cookies.Get(ctx, SessionCookieName)
	if err != nil || !ok || v == "" {
		return "", false
	}
	return v, true
}

// BearerHeader formats a token for the Authorization header
func BearerHeader(token string) string {
	return "Bearer " + token
}

// ParseBearer extracts the token from an Authorization header value
func ParseBearer(header string) (string, bool) {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// NewClientID creates a random client identifier
func NewClientID() string {
	return uuid.NewString()
}

// ValidateClientID rejects cookie values that are not UUIDs
func ValidateClientID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidClientID
	}
	return nil
}
