package convert

import (
	"errors"
	"fmt"
)

// Typed error kinds surfaced by the conversion pipeline. Callers match them
// with errors.Is; messages carry the structural detail.
var (
	// ErrUnsupportedFileType is reserved for callers that gate on extension
	// before dispatching; Convert itself never returns it because unknown
	// extensions route to the generic decoder.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrFileRead indicates the underlying byte source could not be read.
	ErrFileRead = errors.New("file read error")

	// ErrConversion indicates a container-structure failure: unreadable
	// archive, missing inner part, invalid inner XML encoding, or an
	// unopenable paged document.
	ErrConversion = errors.New("conversion error")

	// ErrEncoding indicates every candidate text encoding rejected the input.
	// Only the markup decoder returns it; the generic path degrades to hex.
	ErrEncoding = errors.New("encoding error")
)

func conversionErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConversion, fmt.Sprintf(format, args...))
}
