package generator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "nanoid"

	reasonInvalidRequest = "invalid_request"
	reasonRandomSource   = "random_source"
)

// Metrics holds the generator collectors.
type Metrics struct {
	Generated *prometheus.CounterVec
	Errors    *prometheus.CounterVec
	Duration  *prometheus.HistogramVec
}

// NewMetrics registers the generator collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Generated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "generated_total",
				Help:      "Number of generated ids, differentiated by strategy.",
			},
			[]string{"strategy"},
		),
		Errors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "generate_errors_total",
				Help:      "Number of failed id requests, differentiated by reason.",
			},
			[]string{"reason"},
		),
		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "generate_duration_seconds",
				Help:      "Time spent generating a batch of ids.",
				Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10), //nolint:mnd
			},
			[]string{"strategy"},
		),
	}
}
