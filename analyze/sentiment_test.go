package analyze

import (
	"math"
	"testing"
)

func TestLexiconScorerPositive(t *testing.T) {
	got := NewLexiconScorer().Score("I love this amazing product, it is fantastic and wonderful.")

	if got.Label != SentimentPositive {
		t.Errorf("label = %s, want positive", got.Label)
	}
	if got.Score <= 0 {
		t.Errorf("score = %f, want > 0", got.Score)
	}
	if got.Confidence != 1.0 {
		t.Errorf("confidence = %f, want 1.0 for a unanimous text", got.Confidence)
	}
}

func TestLexiconScorerNegative(t *testing.T) {
	got := NewLexiconScorer().Score("This is terrible, awful, and disappointing. I hate it.")

	if got.Label != SentimentNegative {
		t.Errorf("label = %s, want negative", got.Label)
	}
	if got.Score >= 0 {
		t.Errorf("score = %f, want < 0", got.Score)
	}
}

func TestLexiconScorerNeutral(t *testing.T) {
	got := NewLexiconScorer().Score("The meeting is scheduled for Tuesday at noon.")

	if got.Label != SentimentNeutral {
		t.Errorf("label = %s, want neutral", got.Label)
	}
	if got.Score != 0 {
		t.Errorf("score = %f, want 0", got.Score)
	}
	if got.Confidence != 0 {
		t.Errorf("confidence = %f, want 0", got.Confidence)
	}
}

func TestLexiconScorerMixedLeansNeutral(t *testing.T) {
	// One hit each way cancels to zero.
	got := NewLexiconScorer().Score("The good news came with bad timing.")

	if got.Score != 0 {
		t.Errorf("score = %f, want 0", got.Score)
	}
	if got.Label != SentimentNeutral {
		t.Errorf("label = %s, want neutral", got.Label)
	}
}

func TestLexiconScorerStripsPunctuation(t *testing.T) {
	got := NewLexiconScorer().Score("Excellent!")

	if got.Label != SentimentPositive {
		t.Errorf("label = %s, want positive", got.Label)
	}
	if math.Abs(got.Score-1.0) > 1e-9 {
		t.Errorf("score = %f, want 1.0", got.Score)
	}
}

func TestLabelThresholdBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  SentimentLabel
	}{
		{0.31, SentimentPositive},
		{0.3, SentimentNeutral},
		{-0.3, SentimentNeutral},
		{-0.31, SentimentNegative},
		{0, SentimentNeutral},
	}
	for _, c := range cases {
		if got := labelForScore(c.score); got != c.want {
			t.Errorf("labelForScore(%f) = %s, want %s", c.score, got, c.want)
		}
	}
}
