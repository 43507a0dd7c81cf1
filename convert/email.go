package convert

import (
	"bytes"
	"io"
	"strings"

	"github.com/emersion/go-mbox"
	"github.com/jhillyerd/enmime"
)

// EMLExtractor extracts readable text from a single MIME message.
type EMLExtractor struct{}

// ExtractText implements the Extractor interface for EML files. The plain
// text part is preferred; an HTML-only message gets its tags stripped.
func (e *EMLExtractor) ExtractText(data []byte) (string, error) {
	env, err := enmime.ReadEnvelope(bytes.NewReader(data))
	if err != nil {
		return "", conversionErr("cannot parse MIME message: %v", err)
	}

	text := env.Text
	if text == "" && env.HTML != "" {
		text = betweenAngleStripper.ReplaceAllString(env.HTML, " ")
		text = decodeXMLEntities(text)
	}

	return strings.Join(strings.Fields(text), " "), nil
}

// MBOXExtractor extracts text from a mailbox of MIME messages, one block
// per message separated by "---". A mailbox where nothing parses degrades
// to the generic decoder rather than failing.
type MBOXExtractor struct{}

// ExtractText implements the Extractor interface for MBOX files.
func (e *MBOXExtractor) ExtractText(data []byte) (string, error) {
	reader := mbox.NewReader(bytes.NewReader(data))
	eml := &EMLExtractor{}

	var b strings.Builder
	for {
		msg, err := reader.NextMessage()
		if err != nil {
			break
		}
		raw, err := io.ReadAll(msg)
		if err != nil {
			continue
		}
		text, err := eml.ExtractText(raw)
		if err != nil || text == "" {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n---\n")
	}

	if b.Len() == 0 {
		return DecodeBytes(data), nil
	}
	return strings.TrimSpace(b.String()), nil
}
