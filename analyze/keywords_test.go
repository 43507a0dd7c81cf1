package analyze

import (
	"strings"
	"testing"
)

func TestExtractKeywordsRanking(t *testing.T) {
	text := "Machine learning transforms machine translation. Machine models keep learning."
	keywords := ExtractKeywords(text)

	if len(keywords) == 0 {
		t.Fatal("no keywords extracted")
	}
	if keywords[0].Word != "machine" {
		t.Errorf("top keyword = %q, want machine", keywords[0].Word)
	}
	if keywords[0].Frequency != 3 {
		t.Errorf("top frequency = %d, want 3", keywords[0].Frequency)
	}
	if keywords[0].Importance != 1.0 {
		t.Errorf("top importance = %f, want 1.0", keywords[0].Importance)
	}
	if keywords[1].Word != "learning" || keywords[1].Frequency != 2 {
		t.Errorf("second keyword = %+v, want learning x2", keywords[1])
	}
}

func TestExtractKeywordsExcludesStopWordsAndShortWords(t *testing.T) {
	keywords := ExtractKeywords("the cat sat on the mat with a big dog")

	for _, kw := range keywords {
		if stopWords[kw.Word] {
			t.Errorf("stop word leaked into keywords: %q", kw.Word)
		}
		if len(kw.Word) <= 2 {
			t.Errorf("short word leaked into keywords: %q", kw.Word)
		}
	}
}

func TestExtractKeywordsTiesKeepDiscoveryOrder(t *testing.T) {
	keywords := ExtractKeywords("alpha beta gamma")

	want := []string{"alpha", "beta", "gamma"}
	if len(keywords) != len(want) {
		t.Fatalf("got %d keywords, want %d", len(keywords), len(want))
	}
	for i, w := range want {
		if keywords[i].Word != w {
			t.Errorf("keywords[%d] = %q, want %q", i, keywords[i].Word, w)
		}
		if keywords[i].Importance != 1.0 {
			t.Errorf("tied importance = %f, want 1.0", keywords[i].Importance)
		}
	}
}

func TestExtractKeywordsCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 30; i++ {
		b.WriteString("word")
		b.WriteByte(byte('a' + i%26))
		b.WriteByte('x')
		b.WriteString(" ")
	}
	keywords := ExtractKeywords(b.String())

	if len(keywords) > maxKeywords {
		t.Errorf("got %d keywords, cap is %d", len(keywords), maxKeywords)
	}
}

func TestExtractKeywordsEmpty(t *testing.T) {
	if kw := ExtractKeywords(""); kw != nil {
		t.Errorf("expected nil for empty text, got %v", kw)
	}
	if kw := ExtractKeywords("a an of"); kw != nil {
		t.Errorf("expected nil for all-filtered text, got %v", kw)
	}
}
