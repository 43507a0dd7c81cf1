package convert

import (
	"archive/zip"
	"bytes"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ArchiveReader is the capability the archive extractor needs from a
// ZIP-structured container: look up one entry by its internal path.
type ArchiveReader interface {
	ReadEntry(path string) ([]byte, error)
}

// zipArchive adapts archive/zip to the ArchiveReader capability.
type zipArchive struct {
	r *zip.Reader
}

// OpenZipArchive opens raw container bytes as an ArchiveReader.
func OpenZipArchive(data []byte) (ArchiveReader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, conversionErr("cannot open archive: %v", err)
	}
	return &zipArchive{r: zr}, nil
}

func (z *zipArchive) ReadEntry(path string) ([]byte, error) {
	for _, f := range z.r.File {
		if f.Name != path {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, conversionErr("cannot open archive entry %s: %v", path, err)
		}
		defer rc.Close()
		content, err := io.ReadAll(rc)
		if err != nil {
			return nil, conversionErr("cannot read archive entry %s: %v", path, err)
		}
		return content, nil
	}
	return nil, conversionErr("archive entry %s not found", path)
}

// ArchiveXMLExtractor extracts human-readable text from one XML part inside a
// ZIP-structured word-processor container. The text-run tag differs per
// format (w:t for OOXML, text:p/text:h/text:span for OpenDocument).
type ArchiveXMLExtractor struct {
	// InnerPath is the internal part holding the document body.
	InnerPath string
	// RunPattern matches one text run and captures its inner text.
	RunPattern *regexp.Regexp
}

// NewDocxExtractor extracts the main document part of an OOXML container.
func NewDocxExtractor() *ArchiveXMLExtractor {
	return &ArchiveXMLExtractor{
		InnerPath:  "word/document.xml",
		RunPattern: regexp.MustCompile(`(?s)<w:t[^>]*>(.*?)</w:t>`),
	}
}

// NewOdtExtractor extracts the content part of an OpenDocument container.
func NewOdtExtractor() *ArchiveXMLExtractor {
	return &ArchiveXMLExtractor{
		InnerPath:  "content.xml",
		RunPattern: regexp.MustCompile(`(?s)<text:(?:p|h|span)[^>]*>(.*?)</text:(?:p|h|span)>`),
	}
}

// Namespace-declaration attributes are removed textually before run
// extraction. The prefix list is fixed; removal is idempotent and
// order-independent because the patterns do not overlap.
var namespacePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\s+xmlns:[a-zA-Z0-9]+="[^"]*"`),
	regexp.MustCompile(`\s+xmlns="[^"]*"`),
	regexp.MustCompile(`\s+mc:Ignorable="[^"]*"`),
}

// fallbackDenylist rejects candidate strings associated with embedded
// binary, drawing, and relationship metadata rather than document text.
var fallbackDenylist = []string{
	"xmlns", "schemas.", "http://", "https://",
	"rId", "relationship", "base64", "binary",
	"image", "drawing", "object",
	".png", ".jpg", ".jpeg", ".gif", ".bmp", ".emf", ".wmf",
}

var (
	betweenTagsPattern  = regexp.MustCompile(`>([^<>]{3,})<`)
	doubleQuotedPattern = regexp.MustCompile(`"([^"]{5,})"`)
	singleQuotedPattern = regexp.MustCompile(`'([^']{5,})'`)
	whitespaceRuns      = regexp.MustCompile(`\s+`)
)

// ExtractText implements the Extractor interface for archive-XML containers.
func (e *ArchiveXMLExtractor) ExtractText(data []byte) (string, error) {
	archive, err := OpenZipArchive(data)
	if err != nil {
		return "", err
	}
	return e.ExtractFromArchive(archive)
}

// ExtractFromArchive runs the extraction over an already-open container.
func (e *ArchiveXMLExtractor) ExtractFromArchive(archive ArchiveReader) (string, error) {
	content, err := archive.ReadEntry(e.InnerPath)
	if err != nil {
		return "", err
	}

	// Inner XML comes from a known-UTF-8 producer; no fallback encodings.
	if !utf8.Valid(content) {
		return "", conversionErr("entry %s is not valid UTF-8", e.InnerPath)
	}
	xml := string(content)

	for _, pat := range namespacePatterns {
		xml = pat.ReplaceAllString(xml, "")
	}

	text := e.extractRuns(xml)
	if strings.TrimSpace(text) == "" {
		text = extractLooseText(xml)
	}

	text = decodeXMLEntities(text)
	text = whitespaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text), nil
}

// extractRuns is the primary pass: inner text of every text-run element,
// space-joined, skipping runs that are empty after trimming.
func (e *ArchiveXMLExtractor) extractRuns(xml string) string {
	var b strings.Builder
	for _, m := range e.RunPattern.FindAllStringSubmatch(xml, -1) {
		// Nested formatting elements can survive inside a run; strip them.
		run := betweenAngleStripper.ReplaceAllString(m[1], " ")
		if strings.TrimSpace(run) == "" {
			continue
		}
		b.WriteString(run)
		b.WriteString(" ")
	}
	return b.String()
}

var betweenAngleStripper = regexp.MustCompile(`<[^>]*>`)

// extractLooseText is the fallback pass, used only when no text runs match:
// harvest text between tags and inside quotes, then drop anything that looks
// like embedded binary or relationship metadata.
func extractLooseText(xml string) string {
	var candidates []string
	for _, m := range betweenTagsPattern.FindAllStringSubmatch(xml, -1) {
		candidates = append(candidates, m[1])
	}
	for _, m := range doubleQuotedPattern.FindAllStringSubmatch(xml, -1) {
		candidates = append(candidates, m[1])
	}
	for _, m := range singleQuotedPattern.FindAllStringSubmatch(xml, -1) {
		candidates = append(candidates, m[1])
	}

	var b strings.Builder
	for _, c := range candidates {
		if isDenylisted(c) {
			continue
		}
		b.WriteString(c)
		b.WriteString(" ")
	}
	return b.String()
}

func isDenylisted(s string) bool {
	lower := strings.ToLower(s)
	for _, marker := range fallbackDenylist {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

// decodeXMLEntities maps the five standard XML entities back to literals.
// &amp; is decoded last so "&amp;lt;" does not double-decode.
func decodeXMLEntities(text string) string {
	text = strings.ReplaceAll(text, "&lt;", "<")
	text = strings.ReplaceAll(text, "&gt;", ">")
	text = strings.ReplaceAll(text, "&quot;", "\"")
	text = strings.ReplaceAll(text, "&apos;", "'")
	text = strings.ReplaceAll(text, "&amp;", "&")
	return text
}
