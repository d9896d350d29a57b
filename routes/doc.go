// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package routes defines the navigation table and lazy view resolution.

# Route Table

Default returns the application's routes:

	/home        home
	/login       login
	/signup      signup
	/            landing
	/create-poll create-poll
	/poll/:id    poll-details

The table is built once at startup and never changes. Match resolves a URL
path to a route plus its parameters; PathFor goes the other way for
redirects:

	r, params, ok := table.Match("/poll/abc")   // poll-details, id=abc
	path, err := table.PathFor("login", nil)     // "/login"

Pattern converts a route to an http.ServeMux pattern ("GET /poll/{id}").

# Lazy Views

Registry maps each route name to its deferred view factory. A view is
loaded on the first navigation to its route and cached afterwards:

	reg := routes.NewRegistry(table)
	view, err := reg.Resolve("home")
*/
package routes
