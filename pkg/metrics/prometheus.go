package metrics

import (
	"HousePrice/internal/domain/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain service.Metrics using Prometheus.
type Recorder struct {
	predictions *prometheus.CounterVec
	lastPrice   *prometheus.GaugeVec
	failures    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	live        prometheus.Gauge
}

// New registers the recorder's collectors on the default registry.
func New() *Recorder {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the recorder's collectors on reg.
func NewWith(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		predictions: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "houseprice_predictions_total",
				Help: "Predictions served, by source (remote or fallback)",
			},
			[]string{"source"},
		),
		lastPrice: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "houseprice_last_predicted_price",
				Help: "Most recent predicted price, by source",
			},
			[]string{"source"},
		),
		failures: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "houseprice_failures_total",
				Help: "Failed submissions, by kind",
			},
			[]string{"kind"},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "houseprice_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		live: f.NewGauge(prometheus.GaugeOpts{
			Name: "houseprice_service_live",
			Help: "1 when the startup health check reached the prediction service",
		}),
	}
}

// RecordPrediction records one served prediction.
func (r *Recorder) RecordPrediction(source models.Source, price float64) {
	r.predictions.WithLabelValues(string(source)).Inc()
	r.lastPrice.WithLabelValues(string(source)).Set(price)
}

// RecordFailure records a failed submission.
func (r *Recorder) RecordFailure(kind string) {
	r.failures.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// RecordLiveness records the health check outcome.
func (r *Recorder) RecordLiveness(live bool) {
	if live {
		r.live.Set(1)
		return
	}
	r.live.Set(0)
}
