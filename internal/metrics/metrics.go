package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, path, and status code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qtigen_requests_total",
		Help: "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// ConversionsTotal counts conversions by input mode and outcome
	// ("ok" or the failure kind).
	ConversionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qtigen_conversions_total",
		Help: "Total conversions by mode and outcome.",
	}, []string{"mode", "outcome"})

	// ConversionDuration tracks end-to-end conversion latency per mode.
	ConversionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "qtigen_conversion_duration_seconds",
		Help:    "Time spent on a conversion, provider call included.",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	}, []string{"mode"})

	// InputBytes tracks the size of the submitted payload per mode.
	InputBytes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "qtigen_input_bytes",
		Help:    "Size of conversion input (text, URL, or base64 file data).",
		Buckets: prometheus.ExponentialBuckets(64, 4, 10),
	}, []string{"mode"})

	// ProviderConfigured is 1 when the selected provider has a credential.
	ProviderConfigured = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "qtigen_provider_configured",
		Help: "Whether the LLM provider has a credential (1) or not (0).",
	}, []string{"provider"})
)
