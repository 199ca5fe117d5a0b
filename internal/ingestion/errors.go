package ingestion

import (
	"errors"
	"fmt"
)

// ErrNoText is returned when a document decodes but yields no text, which
// usually means a scanned (image only) PDF.
var ErrNoText = errors.New("could not extract text from document; the file may be image-based or corrupted")

// UnsupportedFormatError is returned for file extensions with no extractor
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Extension == "" {
		return "unsupported file type: missing extension"
	}
	return fmt.Sprintf("unsupported file type: %s", e.Extension)
}

// ExtractionError wraps a failure to decode a document of a known format
type ExtractionError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to extract text from %s: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to extract text from %s: %s", e.Format, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
