package store

import "time"

// PredictionRecord is one persisted prediction. Records are append-only:
// never updated, never deleted.
type PredictionRecord struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	Sentiment  string    `json:"sentiment"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}
