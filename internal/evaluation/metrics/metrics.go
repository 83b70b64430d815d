package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the evaluation module.
type Metrics struct {
	// Decisions by outcome and the rule that produced them
	Decisions *prometheus.CounterVec

	// Overall evaluation latency
	EvaluateLatency prometheus.Histogram

	// Completed frequent flyer lookups by validation mode and result
	FlyerLookups *prometheus.CounterVec

	// Fraud lookups that failed and aborted an evaluation
	FraudLookupErrors prometheus.Counter
}

// New creates a Metrics instance registered with reg. A nil reg registers with
// the default Prometheus registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Decisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cardeval_evaluation_decisions_total",
			Help: "Total application decisions by decision and reason",
		}, []string{"decision", "reason"}),

		EvaluateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "cardeval_evaluation_duration_seconds",
			Help:    "Duration of a full application evaluation including collaborator calls",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),

		FlyerLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cardeval_flyer_lookups_total",
			Help: "Total completed frequent flyer lookups by validation mode and result",
		}, []string{"mode", "result"}), // result: "completed", "failed"

		FraudLookupErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "cardeval_fraud_lookup_errors_total",
			Help: "Total fraud lookups that returned an error",
		}),
	}
}

// IncrementDecision records a decision outcome.
func (m *Metrics) IncrementDecision(decision, reason string) {
	if m != nil {
		m.Decisions.WithLabelValues(decision, reason).Inc()
	}
}

// ObserveEvaluateLatency records the total evaluation duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}

// IncrementFlyerLookup records a completed frequent flyer lookup.
func (m *Metrics) IncrementFlyerLookup(mode string, failed bool) {
	if m == nil {
		return
	}
	result := "completed"
	if failed {
		result = "failed"
	}
	m.FlyerLookups.WithLabelValues(mode, result).Inc()
}

// IncrementFraudLookupError records a failed fraud lookup.
func (m *Metrics) IncrementFraudLookupError() {
	if m != nil {
		m.FraudLookupErrors.Inc()
	}
}
