// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to a terminal; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4), boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width-3]) + "..."
}

// pad right-pads s with spaces to width runes
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// list writes up to limit items as bullets with a trailing "and N more"
func list(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	for _, item := range items[:min(len(items), limit)] {
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
	sb.WriteString("\n")
}

// PrintRecord outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintRecord(label string, record *types.ParsedResume) {
	if record == nil {
		return
	}

	var sb strings.Builder
	c := record.Contact
	for _, field := range []struct {
		name  string
		value *string
	}{
		{"Name", c.Name},
		{"Email", c.Email},
		{"Phone", c.Phone},
		{"LinkedIn", c.LinkedIn},
		{"Location", c.Location},
	} {
		value := types.Deref(field.value)
		if value == "" {
			value = "-"
		}
		sb.WriteString(fmt.Sprintf("%-9s %s\n", field.name+":", value))
	}
	sb.WriteString("\n")

	list(&sb, "Skills", record.Skills, maxItemsToShow)

	experience := make([]string, 0, len(record.Experience))
	for _, e := range record.Experience {
		line := strings.TrimSpace(types.Deref(e.Title) + " @ " + types.Deref(e.Company))
		if start, end := types.Deref(e.StartDate), types.Deref(e.EndDate); start != "" || end != "" {
			line += fmt.Sprintf(" (%s - %s)", start, end)
		}
		experience = append(experience, strings.Trim(line, " @"))
	}
	list(&sb, "Experience", experience, 3)

	education := make([]string, 0, len(record.Education))
	for _, e := range record.Education {
		education = append(education, strings.Trim(types.Deref(e.Degree)+", "+types.Deref(e.Institution), ", "))
	}
	list(&sb, "Education", education, 3)

	list(&sb, "Certifications", record.Certifications, 3)
	list(&sb, "Languages", record.Languages, 3)

	title := "PARSED RESUME"
	if label != "" {
		title += ": " + label
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n\n"))
}

// PrintScoreReport outputs the total, the per-section breakdown, bonuses and
// suggestions of a score report.
func (p *Printer) PrintScoreReport(report *types.ScoreReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total:  %d/%d  Grade %s\n", report.TotalScore, scoring.MaxScore, report.Grade))
	sb.WriteString(fmt.Sprintf("Base:   %d  Bonus: %d\n\n", report.BaseScore, report.BonusScore))

	for _, name := range scoring.SectionOrder() {
		s, ok := report.Breakdown[name]
		if !ok {
			continue
		}
		mark := " "
		if s.Score == s.Max {
			mark = "✓"
		}
		sb.WriteString(fmt.Sprintf("%s %-15s %2d/%-2d %s\n", mark, name, s.Score, s.Max, s.Details))
	}

	if len(report.Bonuses) > 0 {
		names := make([]string, 0, len(report.Bonuses))
		for name := range report.Bonuses {
			names = append(names, name)
		}
		sort.Strings(names)
		sb.WriteString("\nBonuses:\n")
		for _, name := range names {
			sb.WriteString(fmt.Sprintf("  + %s (%d)\n", name, report.Bonuses[name]))
		}
	}

	if len(report.Suggestions) > 0 {
		sb.WriteString("\n")
		list(&sb, "Suggestions", report.Suggestions, maxItemsToShow)
	}

	p.printBox("SCORE REPORT", strings.TrimRight(sb.String(), "\n"))
}

// PrintRanking outputs the top ranked resumes with their grades and notes.
func (p *Printer) PrintRanking(ranked []scoring.Entry) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total resumes ranked: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i, e := range ranked[:count] {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", e.Rank, e.Label))
		if e.Report != nil {
			sb.WriteString(fmt.Sprintf("    Score: %d (%s)\n", e.Report.TotalScore, e.Report.Grade))
		}
		if e.Notes != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", e.Notes))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more resumes", len(ranked)-maxItemsToShow))
	}

	p.printBox("TOP RANKED RESUMES", strings.TrimSuffix(sb.String(), "\n"))
}
