package convert

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// NoExtractableText is returned when a paged document opens correctly but
// no page yields any text. It distinguishes "nothing to extract" from an
// extraction failure, which surfaces as ErrConversion instead.
const NoExtractableText = "[no extractable text]"

// PagedDocument is the capability a page-oriented renderer must expose:
// page count and per-page text, where the bool reports text presence.
type PagedDocument interface {
	PageCount() int
	PageText(i int) (string, bool)
}

// PageRenderer materializes a PagedDocument from raw bytes.
type PageRenderer interface {
	Open(data []byte) (PagedDocument, error)
}

// PagedExtractor concatenates per-page text from a paginated document.
type PagedExtractor struct {
	Renderer PageRenderer
}

// NewPDFExtractor builds a PagedExtractor over the default PDF renderer.
func NewPDFExtractor() *PagedExtractor {
	return &PagedExtractor{Renderer: pdfRenderer{}}
}

// ExtractText implements the Extractor interface for paged documents.
// Each present page's text is followed by a blank line, in page order.
func (e *PagedExtractor) ExtractText(data []byte) (string, error) {
	doc, err := e.Renderer.Open(data)
	if err != nil {
		return "", conversionErr("cannot open paged document: %v", err)
	}

	var b strings.Builder
	for i := 0; i < doc.PageCount(); i++ {
		if text, ok := doc.PageText(i); ok {
			b.WriteString(text)
			b.WriteString("\n\n")
		}
	}

	result := strings.TrimSpace(b.String())
	if result == "" {
		if alt := contentStreamFallback(data); alt != "" {
			return alt, nil
		}
		return NoExtractableText, nil
	}
	return result, nil
}

// pdfRenderer backs PagedDocument with the pdf library. The library can
// panic on malformed files, so every call into it is guarded.
type pdfRenderer struct{}

func (pdfRenderer) Open(data []byte) (PagedDocument, error) {
	var reader *pdf.Reader
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = conversionErr("pdf reader panic: %v", r)
			}
		}()
		reader, err = pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	}()
	if err != nil {
		return nil, err
	}

	pages := 0
	func() {
		defer func() { _ = recover() }()
		pages = reader.NumPage()
	}()

	return &pdfDocument{reader: reader, pages: pages}, nil
}

type pdfDocument struct {
	reader *pdf.Reader
	pages  int
}

func (d *pdfDocument) PageCount() int { return d.pages }

// PageText extracts one page's text, 0-based. Pages are read with panic
// protection so one malformed page never takes down the whole document.
func (d *pdfDocument) PageText(i int) (text string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			text, ok = "", false
		}
	}()

	page := d.reader.Page(i + 1)
	if page.V.IsNull() {
		return "", false
	}

	var b strings.Builder
	for _, item := range page.Content().Text {
		b.WriteString(item.S)
		b.WriteString(" ")
	}
	text = strings.TrimSpace(b.String())
	return text, text != ""
}
