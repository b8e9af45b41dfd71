// Package metrics records per-region fetch outcomes as Prometheus metrics.
//
// A fetch run is a short-lived batch job, so metrics are not served over
// HTTP. They are collected in a private registry and, when requested, written
// in the Prometheus text format for node_exporter's textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Recorder holds the metrics for one run
type Recorder struct {
	registry *prometheus.Registry

	FetchTotal    *prometheus.CounterVec
	FetchDuration *prometheus.HistogramVec
	Events        *prometheus.GaugeVec
	LastSuccess   *prometheus.GaugeVec
}

// NewRecorder creates a Recorder with its own registry
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		FetchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rcja_fetch_total",
				Help: "Region fetches by result",
			},
			[]string{"region", "result"},
		),
		FetchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rcja_fetch_duration_seconds",
				Help:    "Time spent fetching and saving one region",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"region"},
		),
		Events: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "rcja_snapshot_events",
				Help: "Events in the most recent snapshot for a region",
			},
			[]string{"region"},
		),
		LastSuccess: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "rcja_last_success_timestamp_seconds",
				Help: "Unix time of the last successful snapshot for a region",
			},
			[]string{"region"},
		),
	}

	r.registry.MustRegister(r.FetchTotal, r.FetchDuration, r.Events, r.LastSuccess)
	return r
}

// Success records a region whose snapshot was written
func (r *Recorder) Success(region string, count int, took time.Duration) {
	r.FetchTotal.WithLabelValues(region, ResultSuccess).Inc()
	r.FetchDuration.WithLabelValues(region).Observe(took.Seconds())
	r.Events.WithLabelValues(region).Set(float64(count))
	r.LastSuccess.WithLabelValues(region).SetToCurrentTime()
}

// Failure records a region that failed at any stage
func (r *Recorder) Failure(region string, took time.Duration) {
	r.FetchTotal.WithLabelValues(region, ResultFailure).Inc()
	r.FetchDuration.WithLabelValues(region).Observe(took.Seconds())
}

// Registry returns the registry the metrics are registered with
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all metrics to path in the Prometheus text format
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	return nil
}
