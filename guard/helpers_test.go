// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package guard

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/danielhkuo/quickly-pick-web/metrics"
)

func counterValue(t *testing.T, m *metrics.Metrics, route, outcome string) float64 {
	t.Helper()
	return testutil.ToFloat64(m.GuardDecisions.WithLabelValues(route, outcome))
}
