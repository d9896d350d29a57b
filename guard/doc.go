// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package guard decides whether a page navigation may proceed.

# Rules

Check returns exactly one of proceed or redirect:

  - target not in {login, landing, signup} and no session cookie → login
  - target is login and a session cookie is present → home
  - anything else → proceed

Unknown paths have an empty route name and so require a session.

# Middleware

Middleware runs Check for every request. The target comes from the request
path and the source from the Referer header. Session presence is read from
the csrf_token cookie. A redirect is answered with 302 Found:

	handler := guard.Middleware(guard.New(), table, m, pages)
*/
package guard
