package analyze

import (
	"sort"
	"strings"
	"unicode"
)

// maxKeywords caps the ranking at the top entries by frequency.
const maxKeywords = 20

// Keyword is one ranked word. Importance is the frequency normalized
// against the top keyword, so the first entry is always 1.0.
type Keyword struct {
	Word       string  `json:"word"`
	Frequency  int     `json:"frequency"`
	Importance float64 `json:"importance"`
}

var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "had": true,
	"her": true, "was": true, "one": true, "our": true, "out": true,
	"day": true, "get": true, "has": true, "him": true, "his": true,
	"how": true, "man": true, "new": true, "now": true, "old": true,
	"see": true, "two": true, "way": true, "who": true, "its": true,
	"did": true, "yes": true, "this": true, "that": true, "with": true,
	"have": true, "from": true, "they": true, "been": true, "were": true,
	"said": true, "each": true, "which": true, "their": true, "will": true,
	"would": true, "there": true, "what": true, "about": true, "when": true,
	"your": true, "them": true, "then": true, "than": true, "into": true,
	"some": true, "could": true, "other": true, "these": true, "also": true,
	"more": true, "very": true, "just": true, "only": true, "over": true,
	"such": true, "being": true, "most": true, "after": true, "where": true,
}

// ExtractKeywords ranks non-stop-words of length three or more by
// frequency, descending, top 20. The sort is stable so ties keep their
// discovery order, and importance normalizes against the top frequency.
func ExtractKeywords(text string) []Keyword {
	counts := make(map[string]int)
	var order []string

	for _, token := range strings.Fields(text) {
		word := strings.ToLower(strings.TrimFunc(token, unicode.IsPunct))
		if len(word) <= 2 || stopWords[word] {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}
	if len(order) == 0 {
		return nil
	}

	maxFreq := counts[order[0]]
	keywords := make([]Keyword, len(order))
	for i, word := range order {
		keywords[i] = Keyword{
			Word:       word,
			Frequency:  counts[word],
			Importance: float64(counts[word]) / float64(maxFreq),
		}
	}
	return keywords
}
