package analyze

import (
	"strings"
	"unicode/utf8"
)

// readingWordsPerMinute is the fixed speed behind the reading-time estimate.
const readingWordsPerMinute = 200.0

// TextStatistics holds the counting metrics derived from a text. It has no
// lifecycle of its own; it is recomputed from scratch on every call.
type TextStatistics struct {
	WordCount          int     `json:"word_count"`
	CharacterCount     int     `json:"character_count"`
	SentenceCount      int     `json:"sentence_count"`
	ParagraphCount     int     `json:"paragraph_count"`
	AverageWordLength  float64 `json:"average_word_length"`
	ReadingTimeMinutes float64 `json:"reading_time_minutes"`
}

// CalculateStatistics derives counting metrics from text. Words are
// whitespace-delimited tokens; sentences split on '.', '!' and '?' with
// empty segments dropped; paragraphs split on blank lines.
func CalculateStatistics(text string) TextStatistics {
	stats := TextStatistics{
		WordCount:      len(strings.Fields(text)),
		CharacterCount: utf8.RuneCountInString(text),
		SentenceCount:  countSentences(text),
		ParagraphCount: countParagraphs(text),
	}

	if stats.WordCount > 0 {
		stats.AverageWordLength = float64(stats.CharacterCount) / float64(stats.WordCount)
	}
	stats.ReadingTimeMinutes = float64(stats.WordCount) / readingWordsPerMinute

	return stats
}

func countSentences(text string) int {
	segments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	count := 0
	for _, s := range segments {
		if strings.TrimSpace(s) != "" {
			count++
		}
	}
	return count
}

func countParagraphs(text string) int {
	count := 0
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			count++
		}
	}
	return count
}
