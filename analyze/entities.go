package analyze

import (
	"regexp"
	"strings"
	"unicode"
)

// EntityType classifies an extracted span.
type EntityType string

// Entity types. Date exists for downstream consumers; no current
// extraction source produces it.
const (
	EntityPerson       EntityType = "person"
	EntityOrganization EntityType = "organization"
	EntityLocation     EntityType = "location"
	EntityDate         EntityType = "date"
	EntityNumber       EntityType = "number"
	EntityEmail        EntityType = "email"
	EntityURL          EntityType = "url"
)

// Entity is one extracted span. Spans found by different sources are kept
// as independent records; duplicates are intentional because downstream
// consumers rely on raw per-source counts.
type Entity struct {
	Name        string     `json:"name"`
	Type        EntityType `json:"type"`
	Confidence  float64    `json:"confidence"`
	Occurrences int        `json:"occurrences"`
}

// TaggedWord is one word-level span labeled by a tagging capability.
type TaggedWord struct {
	Word       string
	Category   string
	Confidence float64
}

// NamedEntityTagger labels word-level spans with a semantic category.
// Implementations may wrap any underlying tokenizer or model; the
// extractor only depends on this shape.
type NamedEntityTagger interface {
	Tag(text string) []TaggedWord
}

// Fixed confidence constants for the regex sources.
const (
	numberConfidence = 0.9
	emailConfidence  = 0.95
	urlConfidence    = 0.95
)

var (
	numberPattern = regexp.MustCompile(`\b\d+(?:\.\d+)?\b`)
	emailPattern  = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	urlPattern    = regexp.MustCompile(`https?://[^\s<>"']+`)
)

// EntityExtractor combines a tagging capability with regex span scans.
type EntityExtractor struct {
	Tagger NamedEntityTagger
}

// NewEntityExtractor builds an extractor over the default heuristic tagger.
func NewEntityExtractor() *EntityExtractor {
	return &EntityExtractor{Tagger: NewHeuristicTagger()}
}

// Extract returns every entity found by the tagger and the regex scans.
// Occurrence counts are case-insensitive counts of the exact span across
// the whole text. Sources are never merged or de-duplicated.
func (e *EntityExtractor) Extract(text string) []Entity {
	var entities []Entity
	lower := strings.ToLower(text)

	if e.Tagger != nil {
		for _, tagged := range e.Tagger.Tag(text) {
			entities = append(entities, Entity{
				Name:        tagged.Word,
				Type:        mapTaggerCategory(tagged.Category),
				Confidence:  tagged.Confidence,
				Occurrences: countOccurrences(lower, tagged.Word),
			})
		}
	}

	for _, span := range numberPattern.FindAllString(text, -1) {
		entities = append(entities, Entity{
			Name:        span,
			Type:        EntityNumber,
			Confidence:  numberConfidence,
			Occurrences: countOccurrences(lower, span),
		})
	}
	for _, span := range emailPattern.FindAllString(text, -1) {
		entities = append(entities, Entity{
			Name:        span,
			Type:        EntityEmail,
			Confidence:  emailConfidence,
			Occurrences: countOccurrences(lower, span),
		})
	}
	for _, span := range urlPattern.FindAllString(text, -1) {
		entities = append(entities, Entity{
			Name:        span,
			Type:        EntityURL,
			Confidence:  urlConfidence,
			Occurrences: countOccurrences(lower, span),
		})
	}

	return entities
}

// mapTaggerCategory maps a capability's label onto the entity enum.
// Unmapped categories default to person.
func mapTaggerCategory(category string) EntityType {
	switch strings.ToLower(category) {
	case "organization", "org":
		return EntityOrganization
	case "location", "loc", "place", "placename", "gpe":
		return EntityLocation
	default:
		return EntityPerson
	}
}

func countOccurrences(lowerText, span string) int {
	span = strings.ToLower(span)
	if span == "" {
		return 0
	}
	return strings.Count(lowerText, span)
}

// HeuristicTagger is the default NamedEntityTagger: deterministic
// capitalization and suffix rules over word-level spans. It stands in for
// a model-backed capability and keeps analytics reproducible in tests.
type HeuristicTagger struct{}

// NewHeuristicTagger returns the rule-based tagger.
func NewHeuristicTagger() *HeuristicTagger {
	return &HeuristicTagger{}
}

const heuristicConfidence = 0.6

var organizationSuffixes = []string{
	"inc", "inc.", "corp", "corp.", "ltd", "ltd.", "llc", "gmbh",
	"company", "corporation", "group", "holdings", "bank", "university",
}

var locationWords = map[string]bool{
	"london": true, "paris": true, "berlin": true, "tokyo": true,
	"madrid": true, "rome": true, "amsterdam": true, "dublin": true,
	"york": true, "francisco": true, "angeles": true, "chicago": true,
	"europe": true, "america": true, "asia": true, "africa": true,
	"england": true, "france": true, "germany": true, "italy": true,
	"spain": true, "japan": true, "china": true, "india": true,
}

// Tag labels capitalized words that do not open a sentence. A capitalized
// word followed by an organization suffix tags both words organization; a
// known place name tags location; anything else capitalized tags person.
func (t *HeuristicTagger) Tag(text string) []TaggedWord {
	words := strings.Fields(text)
	var tagged []TaggedWord

	sentenceStart := true
	for i, raw := range words {
		word := strings.TrimFunc(raw, unicode.IsPunct)
		startsSentence := sentenceStart
		sentenceStart = strings.ContainsAny(raw, ".!?")

		if word == "" || !unicode.IsUpper(firstRune(word)) {
			continue
		}

		lower := strings.ToLower(word)
		switch {
		case isOrganizationSuffix(lower):
			tagged = append(tagged, TaggedWord{Word: word, Category: "organization", Confidence: heuristicConfidence})
		case i+1 < len(words) && isOrganizationSuffix(strings.ToLower(strings.TrimFunc(words[i+1], unicode.IsPunct))):
			tagged = append(tagged, TaggedWord{Word: word, Category: "organization", Confidence: heuristicConfidence})
		case locationWords[lower]:
			tagged = append(tagged, TaggedWord{Word: word, Category: "location", Confidence: heuristicConfidence})
		case !startsSentence:
			tagged = append(tagged, TaggedWord{Word: word, Category: "person", Confidence: heuristicConfidence})
		}
	}
	return tagged
}

func isOrganizationSuffix(lower string) bool {
	for _, s := range organizationSuffixes {
		if lower == s {
			return true
		}
	}
	return false
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
