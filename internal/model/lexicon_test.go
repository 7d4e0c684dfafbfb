package model

import (
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestLexiconPipeline(t *testing.T) {
	enc := NewLexiconEncoder()
	clf := LexiconClassifier{}

	tests := []struct {
		name string
		text string
		want int // index into [negative, neutral, positive]
	}{
		{"positive", "I absolutely love this amazing product, it is wonderful", 2},
		{"negative", "This is terrible, I hate it, worst purchase ever", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := enc.Encode(tt.text)
			if len(v) != 3 {
				t.Fatalf("feature vector has %d entries, want 3", len(v))
			}

			idx, dist, err := clf.Classify(v)
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if idx != tt.want {
				t.Errorf("class index = %d (dist %v), want %d", idx, dist, tt.want)
			}
			if sum := floats.Sum(dist); math.Abs(sum-1) > 1e-9 {
				t.Errorf("distribution sums to %v, want 1", sum)
			}
		})
	}
}

func TestLexiconClassifierEmptyInput(t *testing.T) {
	enc := NewLexiconEncoder()

	idx, dist, err := LexiconClassifier{}.Classify(enc.Encode(""))
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if idx != 1 {
		t.Errorf("empty text classified as %d (dist %v), want neutral", idx, dist)
	}
}

func TestLexiconClassifierDimensionMismatch(t *testing.T) {
	if _, _, err := (LexiconClassifier{}).Classify([]float64{0.5, 0.5}); err == nil {
		t.Errorf("expected an error for a malformed polarity vector")
	}
}

func TestNormalizeTextStripsMarkdownAndLinks(t *testing.T) {
	in := "check [the docs](https://example.com/docs) at https://example.com now"
	out := normalizeText(in)

	for _, banned := range []string{"https://", "example.com"} {
		if strings.Contains(out, banned) {
			t.Errorf("normalized text still contains %q: %q", banned, out)
		}
	}
	if !strings.Contains(out, "the docs") {
		t.Errorf("link text was dropped: %q", out)
	}
}
