package analyze

import (
	"math"
	"strings"
	"unicode"
)

// SentimentLabel is the coarse polarity bucket.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentNegative SentimentLabel = "negative"
)

// SentimentAnalysis is a polarity score with its label and confidence.
type SentimentAnalysis struct {
	Score      float64        `json:"score"`
	Label      SentimentLabel `json:"label"`
	Confidence float64        `json:"confidence"`
}

// SentimentScorer scores the polarity of a text. The lexicon scorer is the
// default; a VADER-backed scorer implements the same interface.
type SentimentScorer interface {
	Score(text string) SentimentAnalysis
}

// Label thresholds shared by every scorer.
const sentimentThreshold = 0.3

var positiveWords = map[string]bool{
	"good": true, "great": true, "excellent": true, "amazing": true,
	"wonderful": true, "fantastic": true, "love": true, "like": true,
	"best": true, "awesome": true, "perfect": true, "brilliant": true,
	"outstanding": true, "superb": true, "happy": true, "pleased": true,
	"delighted": true, "positive": true, "success": true, "successful": true,
	"win": true, "winning": true, "improve": true, "improved": true,
	"beautiful": true, "enjoy": true, "enjoyed": true, "impressive": true,
	"strong": true, "growth": true, "profit": true, "gain": true,
	"benefit": true, "advantage": true, "recommend": true, "valuable": true,
}

var negativeWords = map[string]bool{
	"bad": true, "terrible": true, "awful": true, "horrible": true,
	"hate": true, "dislike": true, "worst": true, "poor": true,
	"disappointing": true, "disappointed": true, "negative": true,
	"failure": true, "failed": true, "fail": true, "lose": true,
	"loss": true, "losing": true, "problem": true, "problems": true,
	"issue": true, "broken": true, "wrong": true, "sad": true,
	"angry": true, "frustrating": true, "frustrated": true, "weak": true,
	"decline": true, "risk": true, "damage": true, "useless": true,
	"waste": true, "difficult": true, "concern": true, "worried": true,
}

// LexiconScorer scores polarity by fixed word-set membership.
type LexiconScorer struct{}

// NewLexiconScorer returns the default sentiment scorer.
func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{}
}

// Score tokenizes on whitespace, lowercases, strips punctuation, and counts
// lexicon hits. score = (pos-neg)/(pos+neg), zero when no sentiment words
// appear; confidence = min(|score|*2, 1).
func (s *LexiconScorer) Score(text string) SentimentAnalysis {
	positive, negative := 0, 0
	for _, token := range strings.Fields(text) {
		word := strings.ToLower(strings.TrimFunc(token, unicode.IsPunct))
		if positiveWords[word] {
			positive++
		} else if negativeWords[word] {
			negative++
		}
	}

	score := 0.0
	if positive+negative > 0 {
		score = float64(positive-negative) / float64(positive+negative)
	}
	return SentimentAnalysis{
		Score:      score,
		Label:      labelForScore(score),
		Confidence: math.Min(math.Abs(score)*2, 1.0),
	}
}

func labelForScore(score float64) SentimentLabel {
	switch {
	case score > sentimentThreshold:
		return SentimentPositive
	case score < -sentimentThreshold:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}
