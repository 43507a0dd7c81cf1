package convert

import (
	"fmt"
	"os"
	"strings"
)

// Extractor turns raw file bytes into extracted plain text.
type Extractor interface {
	ExtractText(data []byte) (string, error)
}

// GenericExtractor is the terminal strategy: ordered encoding fallback with
// hex degradation. It is total and never returns an error.
type GenericExtractor struct{}

// ExtractText implements the Extractor interface for unclassified bytes.
func (e *GenericExtractor) ExtractText(data []byte) (string, error) {
	return DecodeBytes(data), nil
}

// Converter routes a byte buffer plus an extension hint to the matching
// extraction strategy. Unknown extensions fall through to the generic
// decoder, so conversion of arbitrary bytes always yields some text.
type Converter struct {
	extractors map[string]Extractor
	generic    Extractor
}

// NewConverter builds a converter with the built-in strategies registered.
func NewConverter() *Converter {
	c := &Converter{
		extractors: make(map[string]Extractor),
		generic:    &GenericExtractor{},
	}

	// Archive-markup containers
	c.extractors["docx"] = NewDocxExtractor()
	c.extractors["odt"] = NewOdtExtractor()

	// Paginated documents
	c.extractors["pdf"] = NewPDFExtractor()

	// Lightweight markup
	c.extractors["md"] = &MarkupExtractor{}
	c.extractors["markdown"] = &MarkupExtractor{}

	// Legacy binaries and mail
	c.extractors["doc"] = &LegacyDocExtractor{}
	c.extractors["eml"] = &EMLExtractor{}
	c.extractors["mbox"] = &MBOXExtractor{}

	return c
}

// Register installs or replaces the strategy for an extension.
func (c *Converter) Register(ext string, e Extractor) {
	c.extractors[normalizeExt(ext)] = e
}

// Supported reports whether the extension has a dedicated strategy.
func (c *Converter) Supported(ext string) bool {
	_, ok := c.extractors[normalizeExt(ext)]
	return ok
}

// Convert dispatches on the extension hint and returns extracted text.
// Container strategies (archive, paged) may return ErrConversion; the
// markup strategy may return ErrEncoding; everything else is total.
func (c *Converter) Convert(data []byte, ext string) (string, error) {
	if e, ok := c.extractors[normalizeExt(ext)]; ok {
		return e.ExtractText(data)
	}
	return c.generic.ExtractText(data)
}

// ConvertFile reads a file and converts it using its own extension.
func (c *Converter) ConvertFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFileRead, err)
	}
	ext := ""
	if i := strings.LastIndex(path, "."); i >= 0 && i < len(path)-1 {
		ext = path[i+1:]
	}
	return c.Convert(data, ext)
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// scopedTempFile spills bytes to a temporary file for strategies that need
// path-based random access. The returned cleanup removes the file and is
// safe to call on every exit path.
func scopedTempFile(data []byte, pattern string) (path string, cleanup func(), err error) {
	f, err := os.CreateTemp("", "filetxtkpi_"+pattern)
	if err != nil {
		return "", nil, fmt.Errorf("%w: temp file: %v", ErrFileRead, err)
	}
	path = f.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, err := f.Write(data); err != nil {
		f.Close()
		cleanup()
		return "", nil, fmt.Errorf("%w: temp write: %v", ErrFileRead, err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("%w: temp close: %v", ErrFileRead, err)
	}
	return path, cleanup, nil
}
