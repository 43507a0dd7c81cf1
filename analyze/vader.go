package analyze

import (
	"math"

	"github.com/jonreiter/govader"
)

// VaderScorer backs SentimentScorer with VADER compound scoring. It is the
// opt-in alternative to the lexicon scorer; labels use the same thresholds
// so the two are swappable for downstream consumers.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer builds a VADER-backed scorer.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score implements SentimentScorer using the VADER compound score, which
// already lands in [-1, 1].
func (s *VaderScorer) Score(text string) SentimentAnalysis {
	compound := s.analyzer.PolarityScores(text).Compound
	return SentimentAnalysis{
		Score:      compound,
		Label:      labelForScore(compound),
		Confidence: math.Min(math.Abs(compound)*2, 1.0),
	}
}
