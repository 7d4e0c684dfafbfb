package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PredictionsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sentiment_api_predictions_generated_total",
		Help: "Total number of successful predictions.",
	})
	PredictionsStored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sentiment_api_predictions_stored_total",
		Help: "Total number of predictions written to the store.",
	})
	PredictionsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sentiment_api_predictions_failed_total",
		Help: "Total number of inference failures.",
	})
	InferenceDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sentiment_api_inference_duration_seconds",
		Help:    "Duration of the encode and classify steps.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
	})
)
