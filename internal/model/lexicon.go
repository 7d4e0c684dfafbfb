package model

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
	"gonum.org/v1/gonum/floats"
)

// The lexicon model is the built-in encoder/classifier pair used when no
// trained artifacts are configured. The VADER polarity proportions serve as
// the feature vector, and their normalized form as the class distribution
// over [negative, neutral, positive].

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern          = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

type LexiconEncoder struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewLexiconEncoder() *LexiconEncoder {
	return &LexiconEncoder{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Encode returns the [negative, neutral, positive] polarity proportions for
// the text. Input is flattened from markdown and stripped of links first,
// since bot and feed submissions often carry both.
func (e *LexiconEncoder) Encode(text string) []float64 {
	scores := e.analyzer.PolarityScores(normalizeText(text))
	return []float64{scores.Negative, scores.Neutral, scores.Positive}
}

type LexiconClassifier struct{}

// Classify treats the polarity vector as the class distribution. Text with
// no scored tokens yields a fully neutral distribution.
func (LexiconClassifier) Classify(v []float64) (int, []float64, error) {
	if len(v) != 3 {
		return 0, nil, fmt.Errorf("polarity vector has %d dimensions, expected 3", len(v))
	}

	dist := make([]float64, len(v))
	copy(dist, v)
	if sum := floats.Sum(dist); sum > 0 {
		floats.Scale(1/sum, dist)
	} else {
		dist[1] = 1
	}
	return floats.MaxIdx(dist), dist, nil
}

func removeLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1") // Keep only the text
	return urlPattern.ReplaceAllString(input, "")
}

// Links come out first so the URL pattern never eats into rendered markup.
func normalizeText(input string) string {
	output := blackfriday.Run([]byte(removeLinks(input)), blackfriday.WithNoExtensions())
	return strings.Join(strings.Fields(string(output)), " ")
}
