package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	fetchAttempts *prometheus.CounterVec
	retriesTotal  *prometheus.CounterVec
	forecasts     *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	lastForecast  *prometheus.GaugeVec
	latency       *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		fetchAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockcast_fetch_attempts_total",
				Help: "Total number of outbound history fetch attempts",
			},
			[]string{"provider"},
		),
		retriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockcast_fetch_retries_total",
				Help: "Total number of rate-limit retries performed",
			},
			[]string{"provider"},
		),
		forecasts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockcast_forecasts_total",
				Help: "Total number of forecast pipeline runs by outcome",
			},
			[]string{"provider", "status"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockcast_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastForecast: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "stockcast_last_forecast_price",
				Help: "Last day-1 forecast price for a ticker",
			},
			[]string{"ticker"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockcast_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordFetchAttempt records one outbound provider call.
func (r *Recorder) RecordFetchAttempt(provider string) {
	r.fetchAttempts.WithLabelValues(provider).Inc()
}

// RecordRetry records a rate-limit retry.
func (r *Recorder) RecordRetry(provider string) {
	r.retriesTotal.WithLabelValues(provider).Inc()
}

// RecordForecast records a pipeline run outcome.
func (r *Recorder) RecordForecast(provider, status string) {
	r.forecasts.WithLabelValues(provider, status).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// RecordLastForecast records the next-day forecast price for a ticker.
func (r *Recorder) RecordLastForecast(ticker string, price float64) {
	r.lastForecast.WithLabelValues(ticker).Set(price)
}
