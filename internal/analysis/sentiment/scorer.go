package sentiment

import govader "github.com/jonreiter/govader"

// Category labels for bucketed compound scores.
const (
	Positive = "positive"
	Neutral  = "neutral"
	Negative = "negative"
)

// Thresholds on the VADER compound score.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Scorer maps free text to a polarity score in [-1, 1]. The analytics
// pipeline treats it as an opaque capability so tests can substitute a
// deterministic stub.
type Scorer interface {
	Score(text string) float64
}

// VaderScorer scores text with the VADER lexicon analyzer.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer builds the lexicon once; the analyzer is read-only and safe
// to share across requests.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the compound polarity of text.
func (s *VaderScorer) Score(text string) float64 {
	return s.analyzer.PolarityScores(text).Compound
}

// Categorize buckets a compound score into positive, negative or neutral.
// The partition is exhaustive and exclusive.
func Categorize(score float64) string {
	switch {
	case score >= positiveThreshold:
		return Positive
	case score <= negativeThreshold:
		return Negative
	default:
		return Neutral
	}
}
