// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views holds the page templates and their deferred loaders.

The pages are placeholders; the real components live in the frontend
bundle. Each route name maps to a Loader that parses its template only when
the route is first visited:

	loaders := views.Loaders()
	view, err := loaders["home"]()
	err = view.Render(w, models.PageData{...})

Templates are embedded from templates/ and share layout.html, which renders
pending notifications above the page content.
*/
package views
