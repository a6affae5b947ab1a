package access

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric label values for decision outcomes.
const (
	outcomeAllow   = "allow"
	outcomeDeny    = "deny"
	outcomeExpired = "expired"
)

// Metrics counts access decisions by check kind and outcome.
type Metrics struct {
	decisions *prometheus.CounterVec
}

// NewMetrics registers the decision counter on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		decisions: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "accesskit",
			Name:      "decisions_total",
			Help:      "Access decisions by check kind and outcome.",
		}, []string{"check", "outcome"}),
	}
}

func (m *Metrics) observe(check, outcome string) {
	if m == nil {
		return
	}
	m.decisions.WithLabelValues(check, outcome).Inc()
}
