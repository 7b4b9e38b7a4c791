package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type BusinessMetrics struct {
	OutcomesTotal *prometheus.CounterVec
}

type ModelMetrics struct {
	InferenceDuration *prometheus.HistogramVec
}

var (
	Business = BusinessMetrics{
		OutcomesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loan_predictor_outcomes_total",
				Help: "Total number of assessed applications by terminal outcome.",
			},
			[]string{"outcome"},
		),
	}

	Model = ModelMetrics{
		InferenceDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "loan_predictor_model_inference_duration_seconds",
				Help:    "Histogram of classifier inference latencies.",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
			},
			[]string{"status"},
		),
	}
)

func RecordOutcome(outcome string) {
	Business.OutcomesTotal.WithLabelValues(outcome).Inc()
}

func RecordInference(status string, duration time.Duration) {
	Model.InferenceDuration.WithLabelValues(status).Observe(duration.Seconds())
}
