package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"
)

// LinearClassifier is a pre-trained multinomial logistic-regression model.
// It is immutable after loading and safe for concurrent use.
type LinearClassifier struct {
	coefficients [][]float64 // one row of feature weights per class
	intercepts   []float64
}

type classifierArtifact struct {
	Coefficients [][]float64 `json:"coefficients"`
	Intercepts   []float64   `json:"intercepts"`
}

// LoadClassifier reads trained weights from a JSON artifact file.
func LoadClassifier(path string) (*LinearClassifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read classifier artifact %s: %w", path, err)
	}

	var artifact classifierArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse classifier artifact %s: %w", path, err)
	}
	if len(artifact.Coefficients) == 0 {
		return nil, fmt.Errorf("classifier artifact %s has no coefficient rows", path)
	}
	if len(artifact.Intercepts) != len(artifact.Coefficients) {
		return nil, fmt.Errorf("classifier artifact %s: %d intercepts for %d classes", path, len(artifact.Intercepts), len(artifact.Coefficients))
	}
	width := len(artifact.Coefficients[0])
	for i, row := range artifact.Coefficients {
		if len(row) != width {
			return nil, fmt.Errorf("classifier artifact %s: class %d has %d weights, expected %d", path, i, len(row), width)
		}
	}

	return &LinearClassifier{coefficients: artifact.Coefficients, intercepts: artifact.Intercepts}, nil
}

// Classify scores the feature vector against each class and returns the
// argmax class index alongside the softmax probability distribution.
func (c *LinearClassifier) Classify(v []float64) (int, []float64, error) {
	if len(v) != c.NumFeatures() {
		return 0, nil, fmt.Errorf("feature vector has %d dimensions, model expects %d", len(v), c.NumFeatures())
	}

	scores := make([]float64, len(c.coefficients))
	for i, row := range c.coefficients {
		scores[i] = floats.Dot(row, v) + c.intercepts[i]
	}
	dist := softmax(scores)
	return floats.MaxIdx(dist), dist, nil
}

// NumClasses reports how many classes the model scores.
func (c *LinearClassifier) NumClasses() int {
	return len(c.coefficients)
}

// NumFeatures reports the feature-vector width the model expects.
func (c *LinearClassifier) NumFeatures() int {
	return len(c.coefficients[0])
}

func softmax(scores []float64) []float64 {
	max := floats.Max(scores)
	out := make([]float64, len(scores))
	for i, s := range scores {
		out[i] = math.Exp(s - max)
	}
	floats.Scale(1/floats.Sum(out), out)
	return out
}
