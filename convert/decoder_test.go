package convert

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"
)

func TestDecodeBytesUTF8(t *testing.T) {
	got := DecodeBytes([]byte("héllo wörld"))
	if got != "héllo wörld" {
		t.Errorf("expected UTF-8 passthrough, got %q", got)
	}
}

func TestDecodeBytesEmpty(t *testing.T) {
	if got := DecodeBytes(nil); got != "" {
		t.Errorf("expected empty result for empty input, got %q", got)
	}
}

func TestDecodeBytesLegacyCodePage(t *testing.T) {
	// "café" in Windows-1252: é = 0xE9, which is invalid UTF-8 here.
	data := []byte{'c', 'a', 'f', 0xE9}
	got := DecodeBytes(data)
	if got != "café" {
		t.Errorf("expected Windows-1252 decode %q, got %q", "café", got)
	}
}

// Bytes that every candidate rejects: 0xFF breaks UTF-8, 0x81 is
// unassigned in Windows-1252 and -1250, 0x98 is unassigned in -1251.
var undecodableBytes = []byte{0xFF, 0xFE, 0x81, 0x98}

func TestDecodeBytesHexFallback(t *testing.T) {
	got := DecodeBytes(undecodableBytes)
	want := "ff fe 81 98"
	if got != want {
		t.Errorf("expected hex fallback %q, got %q", want, got)
	}
}

func TestHexFallbackShape(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9a-f]{2}( [0-9a-f]{2})*$`)

	inputs := [][]byte{
		{0x00},
		{0xDE, 0xAD, 0xBE, 0xEF},
		bytes.Repeat([]byte{0xAB}, 100),
	}
	for _, in := range inputs {
		out := HexFallback(in)
		if !pattern.MatchString(out) {
			t.Errorf("hex output %q does not match expected shape", out)
		}
		if want := 2*len(in) + (len(in) - 1); len(out) != want {
			t.Errorf("hex output length %d, want %d for %d input bytes", len(out), want, len(in))
		}
	}
}

func TestHexFallbackEmpty(t *testing.T) {
	if got := HexFallback(nil); got != "" {
		t.Errorf("expected empty hex output, got %q", got)
	}
}

func TestMarkupExtractorRejectsUndecodable(t *testing.T) {
	_, err := (&MarkupExtractor{}).ExtractText(undecodableBytes)
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("expected ErrEncoding, got %v", err)
	}
}

func TestMarkupExtractorPassthrough(t *testing.T) {
	src := "# Title\n\nSome *markdown* text."
	got, err := (&MarkupExtractor{}).ExtractText([]byte(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != src {
		t.Errorf("markup decode must not transform structure: got %q", got)
	}
}

func TestMarkdownToPlain(t *testing.T) {
	got := MarkdownToPlain("# Heading\n\nSee [the site](https://example.com) for *details*.")
	if strings.Contains(got, "#") || strings.Contains(got, "https://") || strings.Contains(got, "*") {
		t.Errorf("markdown syntax leaked into plain text: %q", got)
	}
	if !strings.Contains(got, "Heading") || !strings.Contains(got, "the site") {
		t.Errorf("plain text lost content: %q", got)
	}
}

func BenchmarkHexFallback(b *testing.B) {
	data := bytes.Repeat([]byte{0x81, 0x98, 0xFF}, 4096)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = HexFallback(data)
	}
}

var benchSink string
