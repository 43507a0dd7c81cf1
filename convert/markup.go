package convert

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

// MarkupExtractor decodes lightweight-markup files through the ordered
// encoding list with no structural transformation. Unlike the generic path
// there is no hex fallback: a markup source is assumed to be text, and a
// silent hex rendering would be misleading, so exhaustion is an error.
type MarkupExtractor struct{}

// ExtractText implements the Extractor interface for markup files.
func (e *MarkupExtractor) ExtractText(data []byte) (string, error) {
	s, ok := decodeWithCandidates(data)
	if !ok {
		return "", fmt.Errorf("%w: no candidate encoding accepts markup input", ErrEncoding)
	}
	return s, nil
}

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?://[^\s)]+)\)`)
	bareURLPattern      = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// MarkdownToPlain renders markdown and strips the resulting tags, yielding
// plain prose for the analytics pass. Conversion output never goes through
// this; it exists for callers that want keyword and sentiment extraction
// unpolluted by heading and link syntax.
func MarkdownToPlain(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1")

	rendered := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	text := betweenAngleStripper.ReplaceAllString(string(rendered), " ")
	text = decodeXMLEntities(text)
	text = bareURLPattern.ReplaceAllString(text, "")

	return strings.Join(strings.Fields(text), " ")
}
