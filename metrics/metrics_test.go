// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCounters(t *testing.T) {
	reg := NewRegistry()
	m := New(reg)

	m.GuardDecisions.WithLabelValues("home", OutcomeRedirect).Inc()
	m.GuardDecisions.WithLabelValues("home", OutcomeRedirect).Inc()
	m.SessionChecks.WithLabelValues(SessionRejected).Inc()

	if got := testutil.ToFloat64(m.GuardDecisions.WithLabelValues("home", OutcomeRedirect)); got != 2 {
		t.Errorf("guard redirect count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.SessionChecks.WithLabelValues(SessionRejected)); got != 1 {
		t.Errorf("session rejected count = %v, want 1", got)
	}
}

func TestHandler(t *testing.T) {
	reg := NewRegistry()
	m := New(reg)
	m.Notifications.WithLabelValues("success").Inc()

	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "quickly_pick_web_notify_enqueued_total") {
		t.Error("expected notification counter in output")
	}
}
