package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the moderation pipeline.
type Metrics struct {
	// Gate chain verdicts: "proceed" or the skip reason code.
	Verdicts *prometheus.CounterVec

	// Invite pattern match duration.
	MatchLatency prometheus.Histogram

	// Moderation action executions by step and result.
	ActionSteps *prometheus.CounterVec
}

// New creates a Metrics instance with all moderation metrics registered.
func New() *Metrics {
	return &Metrics{
		Verdicts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "modbot_moderation_verdicts_total",
			Help: "Gate chain verdicts by outcome (proceed or skip reason)",
		}, []string{"verdict"}),

		MatchLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "modbot_moderation_match_duration_seconds",
			Help:    "Duration of invite pattern matching per message",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		}),

		ActionSteps: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "modbot_moderation_action_steps_total",
			Help: "Moderation action sub-steps by step (delete, notify) and result",
		}, []string{"step", "result"}),
	}
}

// IncrementVerdict records one gate chain outcome.
func (m *Metrics) IncrementVerdict(verdict string) {
	if m != nil {
		m.Verdicts.WithLabelValues(verdict).Inc()
	}
}

// ObserveMatchLatency records one pattern match duration.
func (m *Metrics) ObserveMatchLatency(d time.Duration) {
	if m != nil {
		m.MatchLatency.Observe(d.Seconds())
	}
}

// IncrementActionStep records one executor sub-step outcome.
func (m *Metrics) IncrementActionStep(step, result string) {
	if m != nil {
		m.ActionSteps.WithLabelValues(step, result).Inc()
	}
}
