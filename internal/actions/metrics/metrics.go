package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for action creation and dispatch.
type Metrics struct {
	// Actions created by kind.
	ActionsCreated *prometheus.CounterVec

	// Handler notification failures by handler identity.
	HandlerFailures *prometheus.CounterVec

	// Full fan-out latency per created action.
	DispatchLatency prometheus.Histogram
}

// New creates a Metrics instance with all action metrics registered.
func New() *Metrics {
	return &Metrics{
		ActionsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "modbot_actions_created_total",
			Help: "Total action records created by kind",
		}, []string{"kind"}),

		HandlerFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "modbot_action_handler_failures_total",
			Help: "Total action handler notification failures by handler",
		}, []string{"handler"}),

		DispatchLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "modbot_action_dispatch_duration_seconds",
			Help:    "Duration of notifying all handlers for one created action",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementCreated records a created action.
func (m *Metrics) IncrementCreated(kind string) {
	if m != nil {
		m.ActionsCreated.WithLabelValues(kind).Inc()
	}
}

// IncrementHandlerFailure records a failed handler notification.
func (m *Metrics) IncrementHandlerFailure(handler string) {
	if m != nil {
		m.HandlerFailures.WithLabelValues(handler).Inc()
	}
}

// ObserveDispatchLatency records the duration of one full fan-out.
func (m *Metrics) ObserveDispatchLatency(d time.Duration) {
	if m != nil {
		m.DispatchLatency.Observe(d.Seconds())
	}
}
