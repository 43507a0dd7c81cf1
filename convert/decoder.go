package convert

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// encodingCandidate is one entry in the ordered decode list. decode returns
// false when the encoding rejects at least one input byte.
type encodingCandidate struct {
	name   string
	decode func(data []byte) (string, bool)
}

// encodingCandidates is the fixed decode order: UTF-8 first, then legacy
// single-byte code pages. Every charmap here has unassigned byte positions,
// so each candidate can genuinely fail and the hex fallback stays reachable.
var encodingCandidates = []encodingCandidate{
	{name: "utf-8", decode: decodeUTF8},
	{name: "windows-1252", decode: charmapDecoder(charmap.Windows1252)},
	{name: "windows-1250", decode: charmapDecoder(charmap.Windows1250)},
	{name: "windows-1251", decode: charmapDecoder(charmap.Windows1251)},
}

func decodeUTF8(data []byte) (string, bool) {
	if !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}

// charmapDecoder builds a strict byte-for-byte decoder for a single-byte
// code page. A byte mapping to U+FFFD means the position is unassigned in
// that code page, which counts as a rejection.
func charmapDecoder(cm *charmap.Charmap) func(data []byte) (string, bool) {
	return func(data []byte) (string, bool) {
		var b strings.Builder
		b.Grow(len(data))
		for _, c := range data {
			r := cm.DecodeByte(c)
			if r == utf8.RuneError {
				return "", false
			}
			b.WriteRune(r)
		}
		return b.String(), true
	}
}

// DecodeBytes runs the ordered encoding list and returns the first successful
// decode. When every candidate rejects the input it degrades to the hex
// rendering, so the result is total: any byte buffer produces some text.
func DecodeBytes(data []byte) string {
	if s, ok := decodeWithCandidates(data); ok {
		return s
	}
	return HexFallback(data)
}

// decodeWithCandidates tries the fixed encoding order without the hex
// fallback. Shared by the generic and markup paths.
func decodeWithCandidates(data []byte) (string, bool) {
	for _, cand := range encodingCandidates {
		if s, ok := cand.decode(data); ok {
			return s, true
		}
	}
	return "", false
}

// HexFallback renders each byte as two lowercase hex digits separated by a
// single space, preserving byte order. It never fails and loses nothing.
func HexFallback(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	const digits = "0123456789abcdef"
	var b strings.Builder
	b.Grow(len(data) * 3)
	for i, c := range data {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(digits[c>>4])
		b.WriteByte(digits[c&0x0f])
	}
	return b.String()
}
