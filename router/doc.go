// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Pick web front.

# Route Registration

NewRouter builds the full handler chain:

	handler := router.NewRouter(backend, cfg, metrics.NewRegistry())

Requests pass through logging, CORS and client id assignment before
reaching the mux.

# Endpoints

Operational:

	GET /health  - Liveness
	GET /metrics - Prometheus metrics

Pages (navigation guard applied):

	GET /            - landing
	GET /home        - home
	GET /login       - login
	GET /signup      - signup
	GET /create-poll - create-poll
	GET /poll/{id}   - poll-details
	GET /...         - anything else: guard, then 404

Client storage:

	GET    /api/storage/{key}
	PUT    /api/storage/{key}
	DELETE /api/storage/{key}

Notifications:

	POST /api/notifications
*/
package router
