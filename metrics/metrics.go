// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "quickly_pick_web"

// Guard outcomes
const (
	OutcomeProceed  = "proceed"
	OutcomeRedirect = "redirect"
)

// Session check outcomes
const (
	SessionValid     = "valid"
	SessionNoToken   = "no_token"
	SessionRejected  = "rejected"
	SessionTransport = "transport_error"
)

// Metrics holds the counters for navigation and session checks
type Metrics struct {
	GuardDecisions *prometheus.CounterVec
	SessionChecks  *prometheus.CounterVec
	Notifications  *prometheus.CounterVec
}

// New creates and registers the metrics on reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		GuardDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "guard",
			Name:      "decisions_total",
			Help:      "Navigation guard decisions by target route and outcome.",
		}, []string{"route", "outcome"}),
		SessionChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "checks_total",
			Help:      "Session token checks against the backend by outcome.",
		}, []string{"outcome"}),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notify",
			Name:      "enqueued_total",
			Help:      "Notifications enqueued by severity.",
		}, []string{"type"}),
	}

	reg.MustRegister(m.GuardDecisions, m.SessionChecks, m.Notifications)
	return m
}

// NewRegistry creates a Prometheus registry with Go runtime and process collectors
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}

// Handler serves the registry in the Prometheus text format
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// Nop returns metrics registered on a throwaway registry
func Nop() *Metrics {
	return New(prometheus.NewRegistry())
}
