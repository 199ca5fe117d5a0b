// Package export writes ranked parse results as JSON, CSV or XLSX.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/types"
)

// Format is an export file format
type Format string

// Supported export formats
const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ContentTypes maps each format to its HTTP content type
var ContentTypes = map[Format]string{
	FormatJSON: "application/json",
	FormatCSV:  "text/csv; charset=utf-8",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// Columns is the header row shared by the CSV and XLSX exports
var Columns = []string{
	"rank", "file", "name", "email", "phone", "linkedin", "location",
	"skills", "experience", "education", "certifications", "languages",
	"total_score", "grade",
}

// ParseFormat resolves a format name, case-insensitively
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := ContentTypes[f]; !ok {
		return "", fmt.Errorf("unsupported export format %q (want json, csv or xlsx)", s)
	}
	return f, nil
}

// FormatFromPath picks a format from a file extension, defaulting to JSON
func FormatFromPath(path string) Format {
	if f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), ".")); err == nil {
		return f
	}
	return FormatJSON
}

// Row is one ranked resume in a JSON export
type Row struct {
	Rank   int                 `json:"rank"`
	File   string              `json:"file"`
	Record *types.ParsedResume `json:"record"`
	Report *types.ScoreReport  `json:"report"`
	Notes  string              `json:"notes"`
}

// Write ranks entries and writes them to w in the given format
func Write(w io.Writer, format Format, entries []scoring.Entry) error {
	ranked := scoring.Rank(entries)
	switch format {
	case FormatJSON:
		return writeJSON(w, ranked)
	case FormatCSV:
		return writeCSV(w, ranked)
	case FormatXLSX:
		return writeXLSX(w, ranked)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// WriteFile writes the export to path, creating parent directories
func WriteFile(path string, format Format, entries []scoring.Entry) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close export file: %w", closeErr)
		}
	}()

	return Write(f, format, entries)
}

func writeJSON(w io.Writer, ranked []scoring.Entry) error {
	rows := make([]Row, 0, len(ranked))
	for _, e := range ranked {
		record := e.Record
		if record == nil {
			record = types.NewParsedResume()
		}
		rows = append(rows, Row{Rank: e.Rank, File: e.Label, Record: record, Report: e.Report, Notes: e.Notes})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("failed to encode JSON export: %w", err)
	}
	return nil
}

// flatten renders one ranked entry as a row of Columns
func flatten(e scoring.Entry) []string {
	record := e.Record
	if record == nil {
		record = types.NewParsedResume()
	}
	c := record.Contact
	return []string{
		strconv.Itoa(e.Rank),
		e.Label,
		types.Deref(c.Name),
		types.Deref(c.Email),
		types.Deref(c.Phone),
		types.Deref(c.LinkedIn),
		types.Deref(c.Location),
		strings.Join(record.Skills, ";"),
		strconv.Itoa(len(record.Experience)),
		strconv.Itoa(len(record.Education)),
		strconv.Itoa(len(record.Certifications)),
		strings.Join(record.Languages, ";"),
		strconv.Itoa(e.Report.TotalScore),
		e.Report.Grade,
	}
}
