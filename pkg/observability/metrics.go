package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mirageproc/mirage/pkg/domain"
)

// Metrics collects per-round generation metrics.
type Metrics struct {
	rounds   *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
	trailLen *prometheus.HistogramVec
}

// NewMetrics creates the generation collectors.
func NewMetrics() *Metrics {
	return &Metrics{
		rounds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mirage_rounds_total",
				Help: "Total number of completed generation rounds",
			},
			[]string{"generator"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mirage_round_failures_total",
				Help: "Total number of failed generation rounds",
			},
			[]string{"generator"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "mirage_round_duration_seconds",
				Help: "Duration of generation rounds",
			},
			[]string{"generator"},
		),
		trailLen: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mirage_trail_length",
				Help:    "Provenance trail length of generated frames",
				Buckets: prometheus.LinearBuckets(1, 2, 10),
			},
			[]string{"generator"},
		),
	}
}

// Register registers all collectors on the given registerer.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.rounds, m.failures, m.duration, m.trailLen} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRoundEnd: func(_ context.Context, e *domain.RoundEvent) {
			m.rounds.WithLabelValues(e.Generator).Inc()
			m.duration.WithLabelValues(e.Generator).Observe(e.Duration.Seconds())
			m.trailLen.WithLabelValues(e.Generator).Observe(float64(e.TrailLen))
		},
		OnRoundError: func(_ context.Context, e *domain.RoundEvent) {
			m.failures.WithLabelValues(e.Generator).Inc()
		},
	}
}
