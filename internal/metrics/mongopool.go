package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/event"
)

// NewPoolMonitor returns a driver pool monitor that exposes MongoDB connection
// pool statistics as Prometheus metrics registered on reg.
func NewPoolMonitor(reg prometheus.Registerer) *event.PoolMonitor {
	open := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "mongo_pool_open_conns",
		Help: "Number of open connections in the MongoDB pool",
	})
	inUse := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "mongo_pool_in_use_conns",
		Help: "Number of connections currently checked out of the MongoDB pool",
	})
	checkoutFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mongo_pool_checkout_failures_total",
		Help: "Total number of failed MongoDB connection checkouts",
	})
	clears := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mongo_pool_cleared_total",
		Help: "Total number of times the MongoDB pool was cleared",
	})
	reg.MustRegister(open, inUse, checkoutFailures, clears)

	return &event.PoolMonitor{
		Event: func(e *event.PoolEvent) {
			switch e.Type {
			case event.ConnectionCreated:
				open.Inc()
			case event.ConnectionClosed:
				open.Dec()
			case event.GetSucceeded:
				inUse.Inc()
			case event.ConnectionReturned:
				inUse.Dec()
			case event.GetFailed:
				checkoutFailures.Inc()
			case event.PoolCleared:
				clears.Inc()
			}
		},
	}
}
