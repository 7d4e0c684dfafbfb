package model

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Matches sklearn's default token_pattern: words of two or more characters.
var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

// Vectorizer is a pre-fitted TF-IDF encoder. It is immutable after loading
// and safe for concurrent use.
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

type vectorizerArtifact struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
}

// LoadVectorizer reads a fitted vocabulary and idf weights from a JSON
// artifact file.
func LoadVectorizer(path string) (*Vectorizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vectorizer artifact %s: %w", path, err)
	}

	var artifact vectorizerArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse vectorizer artifact %s: %w", path, err)
	}
	if len(artifact.Vocabulary) == 0 || len(artifact.IDF) == 0 {
		return nil, fmt.Errorf("vectorizer artifact %s has an empty vocabulary or idf table", path)
	}
	for term, index := range artifact.Vocabulary {
		if index < 0 || index >= len(artifact.IDF) {
			return nil, fmt.Errorf("vectorizer artifact %s: term %q maps to index %d outside the idf table", path, term, index)
		}
	}

	return &Vectorizer{vocabulary: artifact.Vocabulary, idf: artifact.IDF}, nil
}

// Encode maps text to an L2-normalized TF-IDF vector. Terms outside the
// fitted vocabulary contribute nothing; encoding never fails.
func (v *Vectorizer) Encode(text string) []float64 {
	vec := make([]float64, len(v.idf))
	for _, token := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		if index, ok := v.vocabulary[token]; ok {
			vec[index] += v.idf[index]
		}
	}
	if norm := floats.Norm(vec, 2); norm > 0 {
		floats.Scale(1/norm, vec)
	}
	return vec
}

// Dim reports the width of the vectors Encode produces.
func (v *Vectorizer) Dim() int {
	return len(v.idf)
}
