package ingestion

import (
	"context"
	"mime"
	"net/url"
	"path"
	"strings"

	"github.com/jonathan/resume-parser/internal/fetch"
)

// formatsByMediaType resolves the document format of a fetched resource
var formatsByMediaType = map[string]Format{
	"application/pdf": FormatPDF,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": FormatDOCX,
	"application/vnd.oasis.opendocument.text":                                 FormatODT,
	"text/html":             FormatHTML,
	"application/xhtml+xml": FormatHTML,
	"text/plain":            FormatText,
	"text/markdown":         FormatText,
}

// IngestFromURL fetches a resume from a URL and extracts its text. The
// format comes from the response Content-Type, then from the URL path.
func IngestFromURL(ctx context.Context, rawURL string, opts *fetch.Options) (string, *Metadata, error) {
	result, err := fetch.URL(ctx, rawURL, opts)
	if err != nil {
		return "", nil, err
	}

	data := []byte(result.HTML)
	name := documentName(rawURL, result.ContentType)
	text, format, err := ExtractText(name, data)
	if err != nil {
		return "", nil, err
	}

	return text, NewMetadata(rawURL, name, format, data, text), nil
}

// documentName builds a file name whose extension ExtractText understands
func documentName(rawURL, contentType string) string {
	base := "document"
	if parsed, err := url.Parse(rawURL); err == nil {
		if b := path.Base(parsed.Path); b != "." && b != "/" && b != "" {
			base = b
		}
	}

	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		if format, ok := formatsByMediaType[strings.ToLower(mediaType)]; ok {
			if detected, err := DetectFormat(base); err == nil && detected == format {
				return base
			}
			return strings.TrimSuffix(base, path.Ext(base)) + "." + string(format)
		}
	}

	if _, err := DetectFormat(base); err == nil {
		return base
	}
	// pages without an extension are assumed to be HTML
	return strings.TrimSuffix(base, path.Ext(base)) + ".html"
}
