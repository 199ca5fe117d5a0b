package ingestion

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"

	"github.com/jonathan/resume-parser/internal/fetch"
)

// Format identifies a supported document type
type Format string

// Supported formats
const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatODT  Format = "odt"
	FormatHTML Format = "html"
	FormatText Format = "txt"
)

var formatsByExtension = map[string]Format{
	".pdf":  FormatPDF,
	".docx": FormatDOCX,
	".odt":  FormatODT,
	".html": FormatHTML,
	".htm":  FormatHTML,
	".txt":  FormatText,
	".text": FormatText,
	".md":   FormatText,
}

// DetectFormat maps a file name to its format by extension, case-insensitively
func DetectFormat(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	format, ok := formatsByExtension[ext]
	if !ok {
		return "", &UnsupportedFormatError{Extension: ext}
	}
	return format, nil
}

// ExtractText decodes a document to cleaned plain text. Pages and
// paragraphs are separated by newlines. A document that decodes to no text
// returns ErrNoText.
func ExtractText(filename string, data []byte) (string, Format, error) {
	format, err := DetectFormat(filename)
	if err != nil {
		return "", "", err
	}

	var raw string
	switch format {
	case FormatPDF:
		raw, err = extractPDF(data)
	case FormatDOCX:
		raw, err = extractWith(format, data, docconv.ConvertDocx)
	case FormatODT:
		raw, err = extractWith(format, data, docconv.ConvertODT)
	case FormatHTML:
		raw, err = fetch.ExtractMainText(string(data), fetch.DefaultTextSelectors())
		if err != nil {
			err = &ExtractionError{Format: format, Message: "invalid HTML", Cause: err}
		}
	case FormatText:
		raw, err = extractPlain(data)
	}
	if err != nil {
		return "", format, err
	}

	text := CleanText(raw)
	if text == "" {
		return "", format, ErrNoText
	}
	return text, format, nil
}

// extractPDF joins the plain text of every page with newlines
func extractPDF(data []byte) (text string, err error) {
	// the PDF reader panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			text, err = "", &ExtractionError{Format: FormatPDF, Message: "malformed PDF", Cause: fmt.Errorf("%v", r)}
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: FormatPDF, Message: "failed to open PDF", Cause: err}
	}

	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ExtractionError{Format: FormatPDF, Message: fmt.Sprintf("failed to read page %d", i), Cause: err}
		}
		pages = append(pages, content)
	}
	return strings.Join(pages, "\n"), nil
}

type converter func(io.Reader) (string, map[string]string, error)

func extractWith(format Format, data []byte, convert converter) (string, error) {
	body, _, err := convert(bytes.NewReader(data))
	if err != nil {
		return "", &ExtractionError{Format: format, Message: "failed to convert document", Cause: err}
	}
	return body, nil
}

func extractPlain(data []byte) (string, error) {
	if IsBinaryData(data) {
		return "", &ExtractionError{Format: FormatText, Message: "content is not text"}
	}
	return strings.TrimPrefix(string(data), "\uFEFF"), nil
}

// IsBinaryData reports whether data looks like a binary file rather than
// UTF-8 text: it contains a NUL byte or is not valid UTF-8 within the
// first 8 KiB.
func IsBinaryData(data []byte) bool {
	sample := data
	if len(sample) > 8192 {
		sample = sample[:8192]
		// do not judge a rune split by the cut
		for i := 0; i < utf8.UTFMax && len(sample) > 0 && !utf8.Valid(sample); i++ {
			sample = sample[:len(sample)-1]
		}
	}
	if bytes.IndexByte(sample, 0) >= 0 {
		return true
	}
	return !utf8.Valid(sample)
}
