// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session validates stored tokens and keeps per-client session state.

# Token Check

Validator.Check runs when a protected page loads:

	v := session.NewValidator(cfg.BaseURL, &http.Client{Timeout: cfg.APITimeout}, m)
	nav := session.NewHTTPNavigator(w, r)
	if err := v.Check(ctx, store, nav); err != nil { ... }
	if nav.Redirected() { return }

It sends GET {BaseURL}/get-user-token with the stored token as a bearer
credential. A missing token or any status other than 200 causes a teardown:
token and username are removed from storage and the client is sent to
/login. Transport failures return ErrTransport and leave the session alone.

# Display Name

Context holds one client's display name. Contexts keeps one Context per
client id once a display name is known, and views receive it explicitly.
SyncDisplayName fills it from storage once; later calls and later storage
changes do not overwrite it:

	sc, err := contexts.Sync(ctx, clientID, store)
*/
package session
