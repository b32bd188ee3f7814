package main

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hydrantlabs/netintel/intellib"
)

// prometheusMetrics is a Prometheus-backed implementation of
// intellib.Metrics.
type prometheusMetrics struct {
	providerTotal    *prometheus.CounterVec
	aggregationTotal *prometheus.CounterVec
	duration         prometheus.Histogram
}

func (p *prometheusMetrics) ProviderSucceeded(name string) {
	p.providerTotal.WithLabelValues(name, "success").Inc()
}

func (p *prometheusMetrics) ProviderFailed(name, reason string) {
	p.providerTotal.WithLabelValues(name, reason).Inc()
}

func (p *prometheusMetrics) AggregationFinished(success bool, elapsed time.Duration) {
	outcome := "failure"
	if success {
		outcome = "success"
	}

	p.aggregationTotal.WithLabelValues(outcome).Inc()
	p.duration.Observe(elapsed.Seconds())
}

func newPrometheusMetrics(registerer prometheus.Registerer) (intellib.Metrics, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	metrics := &prometheusMetrics{
		providerTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "netintel_provider_requests_total",
				Help: "Provider fetch outcomes by provider and result (success or a failure reason).",
			},
			[]string{"provider", "result"},
		),
		aggregationTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "netintel_aggregations_total",
				Help: "Finished aggregation runs by outcome.",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "netintel_aggregation_duration_seconds",
				Help:    "Wall time of one aggregation run.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}

	collectors := []prometheus.Collector{
		metrics.providerTotal,
		metrics.aggregationTotal,
		metrics.duration,
	}

	for _, collector := range collectors {
		if err := registerer.Register(collector); err != nil {
			var alreadyRegistered prometheus.AlreadyRegisteredError
			if !errors.As(err, &alreadyRegistered) {
				return nil, err
			}
		}
	}

	return metrics, nil
}
