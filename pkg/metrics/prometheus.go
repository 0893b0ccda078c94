package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	forecastRequests   *prometheus.CounterVec
	fetchErrors        prometheus.Counter
	timestampFallbacks *prometheus.CounterVec
	stateWrites        *prometheus.CounterVec
	latency            *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		forecastRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradegate_forecast_requests_total",
				Help: "Total number of forecast computations by outcome",
			},
			[]string{"outcome"},
		),
		fetchErrors: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "tradegate_calendar_fetch_errors_total",
				Help: "Total number of failed calendar feed fetches",
			},
		),
		timestampFallbacks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradegate_calendar_timestamp_fallbacks_total",
				Help: "Raw calendar records whose timestamp could not be parsed and defaulted to now",
			},
			[]string{"source"},
		),
		stateWrites: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradegate_state_writes_total",
				Help: "Total number of market-state webhook writes by result",
			},
			[]string{"result"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tradegate_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordForecastRequest records a forecast computation outcome ("ok" or "error").
func (r *Recorder) RecordForecastRequest(outcome string) {
	r.forecastRequests.WithLabelValues(outcome).Inc()
}

// RecordFetchError records a failed calendar feed fetch.
func (r *Recorder) RecordFetchError() {
	r.fetchErrors.Inc()
}

// RecordTimestampFallback records a raw record that fell back to "now".
func (r *Recorder) RecordTimestampFallback(source string) {
	r.timestampFallbacks.WithLabelValues(source).Inc()
}

// RecordStateWrite records a webhook write result ("saved", "unauthorized", "rejected").
func (r *Recorder) RecordStateWrite(result string) {
	r.stateWrites.WithLabelValues(result).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
