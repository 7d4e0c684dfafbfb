package core

// Sentiment is the closed set of labels a prediction can carry.
// SentimentError only ever appears in degraded responses; it is never stored.
type Sentiment string

const (
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentPositive Sentiment = "Positive"
	SentimentError    Sentiment = "Error"
)

// labelTable maps classifier class indices to labels. The classifier's
// probability distribution is aligned positionally with this table.
var labelTable = [...]Sentiment{SentimentNegative, SentimentNeutral, SentimentPositive}

// LabelForClass resolves a class index to its label. Unmapped indices report
// false rather than defaulting; a classifier out of sync with the label table
// must surface as a failure, not a wrong answer.
func LabelForClass(index int) (Sentiment, bool) {
	if index < 0 || index >= len(labelTable) {
		return "", false
	}
	return labelTable[index], true
}

// NumLabels reports the size of the label set classifier output must align
// with.
func NumLabels() int {
	return len(labelTable)
}
