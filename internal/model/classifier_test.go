package model

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func testClassifier(t *testing.T) *LinearClassifier {
	t.Helper()
	path := writeArtifact(t, "model.json", map[string]any{
		"coefficients": [][]float64{
			{-2.0, 0.0, 1.0},
			{0.0, 0.5, 0.0},
			{2.0, 0.0, -1.0},
		},
		"intercepts": []float64{0.1, 0.0, -0.1},
	})
	c, err := LoadClassifier(path)
	if err != nil {
		t.Fatalf("LoadClassifier: %v", err)
	}
	return c
}

func TestLinearClassifierClassify(t *testing.T) {
	clf := testClassifier(t)

	tests := []struct {
		name string
		v    []float64
		want int
	}{
		{"positive direction", []float64{1, 0, 0}, 2},
		{"negative direction", []float64{-1, 0, 0}, 0},
		{"third feature flips sign", []float64{0, 0, 3}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, dist, err := clf.Classify(tt.v)
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if idx != tt.want {
				t.Errorf("class index = %d, want %d", idx, tt.want)
			}
			if len(dist) != clf.NumClasses() {
				t.Fatalf("distribution has %d entries, want %d", len(dist), clf.NumClasses())
			}
			if sum := floats.Sum(dist); math.Abs(sum-1) > 1e-9 {
				t.Errorf("distribution sums to %v, want 1", sum)
			}
			if floats.MaxIdx(dist) != idx {
				t.Errorf("returned index %d is not the argmax of %v", idx, dist)
			}
		})
	}
}

func TestLinearClassifierDimensionMismatch(t *testing.T) {
	clf := testClassifier(t)

	if _, _, err := clf.Classify([]float64{1.0}); err == nil {
		t.Errorf("expected an error for a short feature vector")
	}
}

func TestLoadClassifierValidation(t *testing.T) {
	tests := []struct {
		name     string
		artifact map[string]any
	}{
		{"no rows", map[string]any{"coefficients": [][]float64{}, "intercepts": []float64{}}},
		{"intercept count mismatch", map[string]any{
			"coefficients": [][]float64{{1, 2}},
			"intercepts":   []float64{0.1, 0.2},
		}},
		{"ragged rows", map[string]any{
			"coefficients": [][]float64{{1, 2}, {1}},
			"intercepts":   []float64{0, 0},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeArtifact(t, "bad.json", tt.artifact)
			if _, err := LoadClassifier(path); err == nil {
				t.Errorf("expected a load error")
			}
		})
	}
}
