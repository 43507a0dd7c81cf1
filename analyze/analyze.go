// Package analyze implements the text analytics engine: statistics,
// entity/keyword/sentiment extraction, and business-document
// classification. Every function here is a pure function of its input
// text; nothing is retained between calls, so concurrent use needs no
// locking.
package analyze

// ExtractedData is the combined first-pass analytics result.
type ExtractedData struct {
	Statistics TextStatistics    `json:"statistics"`
	Entities   []Entity          `json:"entities"`
	Sentiment  SentimentAnalysis `json:"sentiment"`
	Keywords   []Keyword         `json:"keywords"`
}

// Analyzer bundles the configurable analytics capabilities. The zero
// configuration (NewAnalyzer) is fully deterministic.
type Analyzer struct {
	Entities  *EntityExtractor
	Sentiment SentimentScorer
}

// NewAnalyzer builds an analyzer with the heuristic tagger and the
// lexicon sentiment scorer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		Entities:  NewEntityExtractor(),
		Sentiment: NewLexiconScorer(),
	}
}

// Extract runs the four independent analytics passes over the same text.
// Analytics never fail: empty or signal-free text yields zero values.
func (a *Analyzer) Extract(text string) ExtractedData {
	return ExtractedData{
		Statistics: CalculateStatistics(text),
		Entities:   a.Entities.Extract(text),
		Sentiment:  a.Sentiment.Score(text),
		Keywords:   ExtractKeywords(text),
	}
}

// ExtractBusiness runs the optional second pass.
func (a *Analyzer) ExtractBusiness(text string) BusinessDocumentAnalysis {
	return ClassifyBusinessDocument(text)
}
