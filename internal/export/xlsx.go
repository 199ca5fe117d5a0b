package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/jonathan/resume-parser/internal/scoring"
)

// Sheet names of the XLSX export
const (
	RankedSheet      = "Ranked Resumes"
	SuggestionsSheet = "Suggestions"
)

// gradeFills colours ranked rows by grade
var gradeFills = map[string]string{
	"A+": "C6EFCE",
	"A":  "C6EFCE",
	"B":  "FFEB9C",
	"C":  "FFEB9C",
	"D":  "FFC7CE",
	"F":  "FF9999",
}

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

func writeXLSX(w io.Writer, ranked []scoring.Entry) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", RankedSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SuggestionsSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := createRankedSheet(f, ranked); err != nil {
		return fmt.Errorf("failed to create ranked sheet: %w", err)
	}
	if err := createSuggestionsSheet(f, ranked); err != nil {
		return fmt.Errorf("failed to create suggestions sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write XLSX: %w", err)
	}
	return nil
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder,
	})
}

// setRow writes values starting at column A of row
func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func createRankedSheet(f *excelize.File, ranked []scoring.Entry) error {
	header, err := headerStyle(f)
	if err != nil {
		return err
	}

	headers := make([]any, len(Columns))
	for i, c := range Columns {
		headers[i] = c
	}
	if err := setRow(f, RankedSheet, 1, headers); err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(len(Columns))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(RankedSheet, "A1", lastCol+"1", header); err != nil {
		return err
	}
	if err := f.SetColWidth(RankedSheet, "B", "H", 22); err != nil {
		return err
	}

	styles := make(map[string]int, len(gradeFills))
	for grade, fill := range gradeFills {
		style, err := f.NewStyle(&excelize.Style{
			Fill:   excelize.Fill{Type: "pattern", Color: []string{fill}, Pattern: 1},
			Border: thinBorder,
		})
		if err != nil {
			return err
		}
		styles[grade] = style
	}

	for i, e := range ranked {
		row := i + 2
		values := make([]any, 0, len(Columns))
		for col, v := range flatten(e) {
			// rank, the counts and total_score are numeric cells
			if n, err := strconv.Atoi(v); err == nil && isNumericColumn(col) {
				values = append(values, n)
				continue
			}
			values = append(values, v)
		}
		if err := setRow(f, RankedSheet, row, values); err != nil {
			return err
		}
		r := strconv.Itoa(row)
		if err := f.SetCellStyle(RankedSheet, "A"+r, lastCol+r, styles[e.Report.Grade]); err != nil {
			return err
		}
	}

	if len(ranked) > 0 {
		if err := f.AutoFilter(RankedSheet, fmt.Sprintf("A1:%s%d", lastCol, len(ranked)+1), []excelize.AutoFilterOptions{}); err != nil {
			return err
		}
	}

	return f.SetPanes(RankedSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func isNumericColumn(col int) bool {
	switch Columns[col] {
	case "rank", "experience", "education", "certifications", "total_score":
		return true
	}
	return false
}

func createSuggestionsSheet(f *excelize.File, ranked []scoring.Entry) error {
	header, err := headerStyle(f)
	if err != nil {
		return err
	}
	wrap, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
		Border:    thinBorder,
	})
	if err != nil {
		return err
	}

	if err := setRow(f, SuggestionsSheet, 1, []any{"rank", "file", "notes", "suggestion"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(SuggestionsSheet, "A1", "D1", header); err != nil {
		return err
	}
	if err := f.SetColWidth(SuggestionsSheet, "B", "B", 25); err != nil {
		return err
	}
	if err := f.SetColWidth(SuggestionsSheet, "C", "D", 60); err != nil {
		return err
	}

	row := 2
	for _, e := range ranked {
		suggestions := e.Report.Suggestions
		if len(suggestions) == 0 {
			suggestions = []string{""}
		}
		for _, s := range suggestions {
			if err := setRow(f, SuggestionsSheet, row, []any{e.Rank, e.Label, e.Notes, s}); err != nil {
				return err
			}
			r := strconv.Itoa(row)
			if err := f.SetCellStyle(SuggestionsSheet, "A"+r, "D"+r, wrap); err != nil {
				return err
			}
			row++
		}
	}

	return f.SetPanes(SuggestionsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
