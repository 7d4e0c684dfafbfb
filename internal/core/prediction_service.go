package core

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/sentilab/sentiment-api/internal/metrics"
	"github.com/sentilab/sentiment-api/internal/store"
)

// ErrInference marks failures inside the encode/classify steps. Callers can
// distinguish these from storage errors with errors.Is and answer with a
// degraded result instead of aborting the request.
var ErrInference = errors.New("inference failed")

// Encoder turns raw text into a fixed-width feature vector. Implementations
// are loaded once at startup and must be safe for concurrent use.
type Encoder interface {
	Encode(text string) []float64
}

// Classifier maps a feature vector to a class index and a probability
// distribution aligned with the label table.
type Classifier interface {
	Classify(v []float64) (classIndex int, distribution []float64, err error)
}

// PredictionStore persists predictions and replays the most recent ones.
type PredictionStore interface {
	AppendPrediction(text, sentiment string, confidence float64) (int64, error)
	RecentPredictions(limit int) ([]store.PredictionRecord, error)
}

type PredictionResult struct {
	Text       string    `json:"text"`
	Sentiment  Sentiment `json:"sentiment"`
	Confidence float64   `json:"confidence"`
}

type PredictionService struct {
	store      PredictionStore
	encoder    Encoder
	classifier Classifier
}

func NewPredictionService(st PredictionStore, enc Encoder, clf Classifier) *PredictionService {
	return &PredictionService{
		store:      st,
		encoder:    enc,
		classifier: clf,
	}
}

// Predict runs text through the encoder and classifier, derives the label and
// rounded confidence, persists the outcome, and returns it. The write happens
// before the result is returned.
//
// On an inference failure the degraded result {text, "Error", 0.0} comes back
// alongside an error satisfying errors.Is(err, ErrInference), and nothing is
// written. On a storage failure the error is returned as-is with a zero
// result; the write is not retried.
func (s *PredictionService) Predict(text string) (PredictionResult, error) {
	start := time.Now()

	v := s.encoder.Encode(text)

	classIndex, dist, err := s.classifier.Classify(v)
	if err != nil {
		metrics.PredictionsFailed.Inc()
		slog.Error("[PredictionService] Classification failed",
			slog.String("error", err.Error()))
		return errorResult(text), fmt.Errorf("%w: %v", ErrInference, err)
	}
	if len(dist) == 0 {
		metrics.PredictionsFailed.Inc()
		return errorResult(text), fmt.Errorf("%w: classifier returned an empty distribution", ErrInference)
	}

	label, ok := LabelForClass(classIndex)
	if !ok {
		metrics.PredictionsFailed.Inc()
		slog.Error("[PredictionService] Classifier emitted an unmapped class",
			slog.Int("class_index", classIndex))
		return errorResult(text), fmt.Errorf("%w: class index %d has no label", ErrInference, classIndex)
	}

	confidence := roundConfidence(floats.Max(dist))
	metrics.InferenceDuration.Observe(time.Since(start).Seconds())

	if _, err := s.store.AppendPrediction(text, string(label), confidence); err != nil {
		return PredictionResult{}, fmt.Errorf("failed to persist prediction: %w", err)
	}
	metrics.PredictionsStored.Inc()
	metrics.PredictionsGenerated.Inc()

	return PredictionResult{Text: text, Sentiment: label, Confidence: confidence}, nil
}

// History returns up to limit predictions, newest first.
func (s *PredictionService) History(limit int) ([]store.PredictionRecord, error) {
	return s.store.RecentPredictions(limit)
}

func errorResult(text string) PredictionResult {
	return PredictionResult{Text: text, Sentiment: SentimentError, Confidence: 0.0}
}

// roundConfidence rounds to two decimals, half away from zero.
func roundConfidence(c float64) float64 {
	return math.Round(c*100) / 100
}
