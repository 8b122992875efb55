// Package metrics defines and registers all custom Prometheus metrics
// for the driver dashboard API. It is the single source of truth for
// metric names, labels, and help strings; HTTP-level request metrics
// come from the echoprometheus middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dashboard"

// SignupsTotal counts successfully completed driver signups.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of driver accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ExpensesRecordedTotal counts persisted expense records.
// Label:
//   - category: the expense category (fuel, maintenance, ...)
var ExpensesRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "expenses_recorded_total",
		Help:      "Total number of expense records persisted, by category.",
	},
	[]string{"category"},
)

// ProviderErrorsTotal counts failures of the external auth provider.
// Label:
//   - op: "sign_up", "sign_in" or "sign_out"
var ProviderErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provider_errors_total",
		Help:      "Total number of external auth provider failures, by operation.",
	},
	[]string{"op"},
)
