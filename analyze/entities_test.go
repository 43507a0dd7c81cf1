package analyze

import (
	"testing"
)

// stubTagger returns a fixed span list regardless of input.
type stubTagger struct {
	words []TaggedWord
}

func (s *stubTagger) Tag(string) []TaggedWord { return s.words }

func findEntities(entities []Entity, typ EntityType) []Entity {
	var out []Entity
	for _, e := range entities {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

func TestExtractRegexSpans(t *testing.T) {
	e := &EntityExtractor{}
	text := "Contact support@example.com or visit https://example.com/docs about invoice 42."

	entities := e.Extract(text)

	emails := findEntities(entities, EntityEmail)
	if len(emails) != 1 || emails[0].Name != "support@example.com" {
		t.Errorf("email spans = %+v", emails)
	}
	if len(emails) == 1 && emails[0].Confidence != 0.95 {
		t.Errorf("email confidence = %f, want 0.95", emails[0].Confidence)
	}

	urls := findEntities(entities, EntityURL)
	if len(urls) != 1 || urls[0].Name != "https://example.com/docs" {
		t.Errorf("url spans = %+v", urls)
	}

	numbers := findEntities(entities, EntityNumber)
	if len(numbers) != 1 || numbers[0].Name != "42" {
		t.Errorf("number spans = %+v", numbers)
	}
	if len(numbers) == 1 && numbers[0].Confidence != 0.9 {
		t.Errorf("number confidence = %f, want 0.9", numbers[0].Confidence)
	}
}

func TestExtractDecimalNumber(t *testing.T) {
	e := &EntityExtractor{}

	numbers := findEntities(e.Extract("growth of 3.5 percent"), EntityNumber)
	if len(numbers) != 1 || numbers[0].Name != "3.5" {
		t.Errorf("number spans = %+v", numbers)
	}
}

func TestExtractOccurrencesCaseInsensitive(t *testing.T) {
	e := &EntityExtractor{Tagger: &stubTagger{words: []TaggedWord{
		{Word: "Acme", Category: "organization", Confidence: 0.8},
	}}}

	entities := e.Extract("Acme shipped. ACME grew. Analysts rate acme highly.")
	if len(entities) != 1 {
		t.Fatalf("got %d entities, want 1", len(entities))
	}
	if entities[0].Occurrences != 3 {
		t.Errorf("occurrences = %d, want 3", entities[0].Occurrences)
	}
	if entities[0].Type != EntityOrganization {
		t.Errorf("type = %s, want organization", entities[0].Type)
	}
}

func TestUnmappedTaggerCategoryDefaultsToPerson(t *testing.T) {
	e := &EntityExtractor{Tagger: &stubTagger{words: []TaggedWord{
		{Word: "Widget", Category: "misc", Confidence: 0.7},
	}}}

	entities := e.Extract("The Widget arrived.")
	if len(entities) != 1 || entities[0].Type != EntityPerson {
		t.Errorf("unmapped category should map to person: %+v", entities)
	}
}

func TestExtractKeepsDuplicateSources(t *testing.T) {
	// A span found by both the tagger and a regex scan stays two records.
	e := &EntityExtractor{Tagger: &stubTagger{words: []TaggedWord{
		{Word: "42", Category: "misc", Confidence: 0.5},
	}}}

	entities := e.Extract("The answer is 42.")
	if len(entities) != 2 {
		t.Errorf("got %d entities, want 2 (tagger + regex)", len(entities))
	}
}

func TestHeuristicTaggerOrganizationSuffix(t *testing.T) {
	tagged := NewHeuristicTagger().Tag("We partnered with Acme Corp last year.")

	var acme *TaggedWord
	for i := range tagged {
		if tagged[i].Word == "Acme" {
			acme = &tagged[i]
		}
	}
	if acme == nil {
		t.Fatalf("Acme not tagged: %+v", tagged)
	}
	if acme.Category != "organization" {
		t.Errorf("Acme category = %s, want organization", acme.Category)
	}
}

func TestHeuristicTaggerLocation(t *testing.T) {
	tagged := NewHeuristicTagger().Tag("The office moved to Berlin in spring.")

	found := false
	for _, tw := range tagged {
		if tw.Word == "Berlin" && tw.Category == "location" {
			found = true
		}
	}
	if !found {
		t.Errorf("Berlin not tagged as location: %+v", tagged)
	}
}

func TestHeuristicTaggerSkipsSentenceOpeners(t *testing.T) {
	tagged := NewHeuristicTagger().Tag("Yesterday the team met Alice Johnson.")

	for _, tw := range tagged {
		if tw.Word == "Yesterday" {
			t.Errorf("sentence opener should not be tagged: %+v", tw)
		}
	}
	foundAlice := false
	for _, tw := range tagged {
		if tw.Word == "Alice" && tw.Category == "person" {
			foundAlice = true
		}
	}
	if !foundAlice {
		t.Errorf("Alice not tagged as person: %+v", tagged)
	}
}
