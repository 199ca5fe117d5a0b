package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// sectionOrder lists breakdown keys in report order
var sectionOrder = []string{
	types.SectionContact,
	types.SectionSummary,
	types.SectionSkills,
	types.SectionExperience,
	types.SectionEducation,
	types.SectionCertifications,
	types.SectionLanguages,
}

// SectionOrder returns the breakdown keys in report order
func SectionOrder() []string {
	return append([]string(nil), sectionOrder...)
}

// Entry is one labelled resume taking part in a ranking
type Entry struct {
	Label  string              `json:"label"`
	Rank   int                 `json:"rank"`
	Record *types.ParsedResume `json:"-"`
	Report *types.ScoreReport  `json:"report"`
	Notes  string              `json:"notes"`
}

// Rank scores any entries without a report and orders them by total score,
// highest first, breaking ties by label. Ranks start at 1.
func Rank(entries []Entry) []Entry {
	ranked := make([]Entry, len(entries))
	copy(ranked, entries)

	for i := range ranked {
		if ranked[i].Report == nil {
			ranked[i].Report = Score(ranked[i].Record)
		}
		ranked[i].Notes = generateNotes(ranked[i].Report)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Report.TotalScore != ranked[j].Report.TotalScore {
			return ranked[i].Report.TotalScore > ranked[j].Report.TotalScore
		}
		return ranked[i].Label < ranked[j].Label
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// generateNotes names the sections at full marks and those scoring nothing
func generateNotes(report *types.ScoreReport) string {
	var full, empty []string
	for _, name := range sectionOrder {
		s := report.Breakdown[name]
		switch {
		case s.Max > 0 && s.Score == s.Max:
			full = append(full, name)
		case s.Score == 0:
			empty = append(empty, name)
		}
	}

	parts := []string{fmt.Sprintf("Grade %s (%d/%d)", report.Grade, report.TotalScore, MaxScore)}
	if len(full) > 0 {
		parts = append(parts, "Complete: "+strings.Join(full, ", "))
	}
	if len(empty) > 0 {
		parts = append(parts, "Missing: "+strings.Join(empty, ", "))
	}
	return strings.Join(parts, ". ")
}
