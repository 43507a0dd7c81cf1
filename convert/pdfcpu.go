//go:build pdfcpu
// +build pdfcpu

package convert

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Caps for the content-stream fallback.
const (
	fallbackPageCap    = 200
	fallbackPerPageCap = 128 * 1024
)

// contentStreamFallback is the secondary extraction path for paged documents
// whose page loop yields nothing: dump raw content streams with pdfcpu and
// harvest string literals. pdfcpu works on file paths, so the bytes are
// spilled to a scoped temporary file that is removed on every exit path.
func contentStreamFallback(data []byte) (out string) {
	defer func() { _ = recover() }()

	path, cleanup, err := scopedTempFile(data, "*.pdf")
	if err != nil {
		return ""
	}
	defer cleanup()

	tmpDir, err := os.MkdirTemp("", "filetxtkpi_streams_*")
	if err != nil {
		return ""
	}
	defer os.RemoveAll(tmpDir)

	if err := api.ExtractContentFile(path, tmpDir, nil, nil); err != nil {
		return ""
	}

	ents, err := os.ReadDir(tmpDir)
	if err != nil {
		return ""
	}
	sort.Slice(ents, func(i, j int) bool { return ents[i].Name() < ents[j].Name() })

	var b strings.Builder
	pages := 0
	for _, de := range ents {
		if de.IsDir() || pages >= fallbackPageCap {
			continue
		}
		raw, _ := os.ReadFile(filepath.Join(tmpDir, de.Name()))
		if len(raw) == 0 {
			continue
		}
		txt := normalizeStreamText(parseStringLiterals(string(raw), fallbackPerPageCap))
		if txt == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(txt)
		pages++
	}
	return b.String()
}

// parseStringLiterals collects text within balanced parentheses in a PDF
// content stream, honoring backslash escapes, capped at maxOut bytes.
func parseStringLiterals(s string, maxOut int) string {
	var out strings.Builder
	depth := 0
	escape := false
	in := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !in {
			if c == '(' {
				in = true
				depth = 1
			}
			continue
		}
		if escape {
			out.WriteByte(c)
			escape = false
			if out.Len() >= maxOut {
				return out.String()
			}
			continue
		}
		switch c {
		case '\\':
			escape = true
		case '(':
			depth++
			out.WriteByte(c)
		case ')':
			depth--
			if depth == 0 {
				in = false
				out.WriteByte(' ')
			} else {
				out.WriteByte(c)
			}
		default:
			out.WriteByte(c)
		}
		if out.Len() >= maxOut {
			return out.String()
		}
	}
	return out.String()
}

// normalizeStreamText collapses non-printable runes and whitespace runs.
func normalizeStreamText(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if !unicode.IsPrint(r) {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(mapped), " ")
}
