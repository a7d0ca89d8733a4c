// README: Prometheus counters for assignment outcomes.
package dispatch

import "github.com/prometheus/client_golang/prometheus"

var assignmentsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "dispatch_assignments_total",
		Help: "Assignment attempts by candidate kind and outcome",
	},
	[]string{"kind", "outcome"},
)

func init() {
	prometheus.MustRegister(assignmentsTotal)
}

func observeAssignment(kind string, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case isNotFound(err):
		outcome = "not_found"
	case isUnavailable(err):
		outcome = "unavailable"
	default:
		outcome = "error"
	}
	assignmentsTotal.WithLabelValues(kind, outcome).Inc()
}
