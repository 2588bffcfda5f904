package opponent

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	fetchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "opponent_fetch_total",
			Help: "Opponent moves produced, by source",
		},
		[]string{"source"},
	)
	remoteFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "opponent_remote_failures_total",
			Help: "Failed remote fetch attempts, by reason",
		},
		[]string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(fetchTotal)
	prometheus.MustRegister(remoteFailures)
}
