package convert

import (
	"bytes"
	"io"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/richardlehane/mscfb"
)

// LegacyDocExtractor salvages text from pre-OOXML Word binaries, which are
// OLE compound files with the body in a WordDocument stream. Full binary
// .doc parsing is out of scope; the stream is scanned for readable runs
// instead, and any structural failure degrades to the generic decoder so
// this path never errors.
type LegacyDocExtractor struct{}

// ExtractText implements the Extractor interface for legacy .doc files.
func (e *LegacyDocExtractor) ExtractText(data []byte) (string, error) {
	doc, err := mscfb.New(bytes.NewReader(data))
	if err != nil {
		return DecodeBytes(data), nil
	}

	var stream []byte
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		if entry.Name != "WordDocument" {
			continue
		}
		stream, _ = io.ReadAll(entry)
		break
	}
	if len(stream) == 0 {
		return DecodeBytes(data), nil
	}

	text := salvageReadableRuns(stream)
	if strings.TrimSpace(text) == "" {
		return DecodeBytes(data), nil
	}
	return text, nil
}

// minRunLen is the shortest byte run kept by the salvage scan; shorter runs
// are overwhelmingly format noise.
const minRunLen = 4

// salvageReadableRuns harvests printable character runs from a WordDocument
// stream, trying both the single-byte and UTF-16LE layouts Word interleaves.
func salvageReadableRuns(stream []byte) string {
	var runs []string

	// Single-byte pass.
	var cur strings.Builder
	flush := func() {
		if cur.Len() >= minRunLen {
			runs = append(runs, cur.String())
		}
		cur.Reset()
	}
	for _, c := range stream {
		if c >= 0x20 && c < 0x7f {
			cur.WriteByte(c)
		} else {
			flush()
		}
	}
	flush()

	// UTF-16LE pass: printable low plane with zero high bytes.
	var wide []uint16
	flushWide := func() {
		if len(wide) >= minRunLen {
			s := string(utf16.Decode(wide))
			if isMostlyLetters(s) {
				runs = append(runs, s)
			}
		}
		wide = wide[:0]
	}
	for i := 0; i+1 < len(stream); i += 2 {
		u := uint16(stream[i]) | uint16(stream[i+1])<<8
		if u >= 0x20 && u != 0x7f && u < 0x3000 {
			wide = append(wide, u)
		} else {
			flushWide()
		}
	}
	flushWide()

	joined := strings.Join(runs, " ")
	return strings.Join(strings.Fields(joined), " ")
}

func isMostlyLetters(s string) bool {
	letters, total := 0, 0
	for _, r := range s {
		total++
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			letters++
		}
	}
	return total > 0 && float64(letters)/float64(total) > 0.5
}
