// README: Prometheus histogram for candidate scoring rounds.
package matching

import "github.com/prometheus/client_golang/prometheus"

var scoreDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "matching_score_duration_seconds",
		Help:    "Time to score and rank a candidate pool, by candidate kind",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	},
	[]string{"kind"},
)

func init() {
	prometheus.MustRegister(scoreDuration)
}
