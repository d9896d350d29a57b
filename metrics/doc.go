// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics exposes Prometheus counters for the web front.

  - guard_decisions_total{route, outcome}: proceed or redirect
  - session_checks_total{outcome}: valid, no_token, rejected, transport_error
  - notify_enqueued_total{type}: notifications by severity

Serve them with:

	reg := metrics.NewRegistry()
	m := metrics.New(reg)
	mux.Handle("GET /metrics", metrics.Handler(reg))
*/
package metrics
