// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"context"
	"net/http"
	"net/url"
)

// CookieStore exposes the cookies of one request/response pair as a Store.
// Values are percent-escaped on write and unescaped on read. A literal '+'
// is kept as is, matching decodeURIComponent in the browser.
type CookieStore struct {
	r *http.Request
	w http.ResponseWriter
}

// NewCookieStore wraps a request. w may be nil for read-only use.
func NewCookieStore(w http.ResponseWriter, r *http.Request) *CookieStore {
	return &CookieStore{r: r, w: w}
}

func (s *CookieStore) Get(_ context.Context, key string) (string, bool, error) {
	c, err := s.r.Cookie(key)
	if err != nil {
		return "", false, nil
	}
	value, err := url.PathUnescape(c.Value)
	if err != nil {
		// not escaped by us; hand back the raw value
		return c.Value, true, nil
	}
	return value, true, nil
}

func (s *CookieStore) Set(_ context.Context, key, value string) error {
	if s.w == nil {
		return http.ErrNotSupported
	}
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    url.PathEscape(value),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *CookieStore) Remove(_ context.Context, key string) error {
	if s.w == nil {
		return http.ErrNotSupported
	}
	http.SetCookie(s.w, &http.Cookie{
		Name:   key,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	return nil
}
