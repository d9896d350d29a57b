// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides session cookie, bearer token and client id helpers.

# Session Cookie

The backend sets csrf_token when a user logs in. Cookies are read through
storage.CookieStore. Presence is the only signal the navigation guard uses:

	cookies := storage.NewCookieStore(nil, r)
	if auth.HasSession(ctx, cookies) { ... }

CSRFToken returns the decoded value for the login and signup forms, which
echo it back to the backend. A literal '+' in the cookie is kept:

	token, ok := auth.CSRFToken(ctx, cookies)

# Bearer Tokens

	req.Header.Set("Authorization", auth.BearerHeader(token))
	token, ok := auth.ParseBearer(r.Header.Get("Authorization"))

# Client IDs

Each browser gets a random UUID in the qp_client cookie, which scopes its
storage:

	id := auth.NewClientID()
	err := auth.ValidateClientID(id)
*/
package auth
