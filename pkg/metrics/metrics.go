package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors the quiz backend reports. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	recommendations *prometheus.CounterVec
	historySaves    *prometheus.CounterVec
	historyLists    *prometheus.CounterVec
	verifications   *prometheus.CounterVec
}

// MustNewMetrics registers the collectors with reg and panics on duplicate
// registration. Tests should pass a fresh prometheus.NewRegistry().
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		recommendations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "degreedecider",
				Subsystem: "engine",
				Name:      "recommendations_total",
				Help:      "Recommendations served, by degree.",
			},
			[]string{"degree"},
		),
		historySaves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "degreedecider",
				Subsystem: "history",
				Name:      "saves_total",
				Help:      "Quiz result saves, by outcome.",
			},
			[]string{"outcome"},
		),
		historyLists: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "degreedecider",
				Subsystem: "history",
				Name:      "lists_total",
				Help:      "History listings, by outcome.",
			},
			[]string{"outcome"},
		),
		verifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "degreedecider",
				Subsystem: "session",
				Name:      "verifications_total",
				Help:      "Bearer token verifications, by outcome.",
			},
			[]string{"outcome"},
		),
	}
	reg.MustRegister(m.recommendations, m.historySaves, m.historyLists, m.verifications)
	return m
}

func (m *Metrics) ObserveRecommendation(degree string) {
	if m == nil {
		return
	}
	m.recommendations.WithLabelValues(degree).Inc()
}

func (m *Metrics) ObserveSave(outcome string) {
	if m == nil {
		return
	}
	m.historySaves.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveList(outcome string) {
	if m == nil {
		return
	}
	m.historyLists.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveVerification(outcome string) {
	if m == nil {
		return
	}
	m.verifications.WithLabelValues(outcome).Inc()
}
