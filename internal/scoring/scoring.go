// Package scoring grades a parsed resume for completeness and quality.
package scoring

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-parser/internal/types"
)

// Section weights; the maxima sum to 100
const (
	contactWeight        = 15
	summaryWeight        = 10
	skillsWeight         = 20
	experienceWeight     = 30
	educationWeight      = 15
	certificationsWeight = 5
	languagesWeight      = 5
)

// Bonus awards, each all-or-nothing
const (
	manySkillsBonus      = 5
	seniorExpBonus       = 5
	advancedDegreeBonus  = 5
	certificationsBonus  = 3
	completeContactBonus = 2
)

// MaxScore caps the total score
const MaxScore = 100

// contact field points
const (
	namePoints     = 5
	emailPoints    = 5
	phonePoints    = 3
	linkedInPoints = 2
)

// Suggestions in the order they are reported
const (
	SuggestContact        = "Add more contact information (LinkedIn, phone)"
	SuggestSummary        = "Write a more detailed professional summary (150+ words)"
	SuggestSkills         = "List more technical skills relevant to your field"
	SuggestExperience     = "Add more details to work experience (achievements, metrics)"
	SuggestEducation      = "Include education details with degree and institution"
	SuggestCertifications = "Consider adding relevant certifications"
)

var advancedDegreeMarkers = []string{"master", "mba", "ph.d", "phd", "doctorate"}

// Score computes the report for record. It never fails; a nil record scores
// like an empty one.
func Score(record *types.ParsedResume) *types.ScoreReport {
	if record == nil {
		record = types.NewParsedResume()
	}

	breakdown := map[string]types.SectionScore{
		types.SectionContact:        scoreContact(record.Contact),
		types.SectionSummary:        scoreSummary(record.Summary),
		types.SectionSkills:         scoreSkills(record.Skills),
		types.SectionExperience:     scoreExperience(record.Experience),
		types.SectionEducation:      scoreEducation(record.Education),
		types.SectionCertifications: scoreCount(len(record.Certifications), certificationsWeight, "certifications"),
		types.SectionLanguages:      scoreCount(len(record.Languages), languagesWeight, "languages"),
	}

	base := 0
	for _, s := range breakdown {
		base += s.Score
	}

	bonuses := computeBonuses(record)
	bonus := 0
	for _, v := range bonuses {
		bonus += v
	}

	total := base + bonus
	if total > MaxScore {
		total = MaxScore
	}

	return &types.ScoreReport{
		TotalScore:  total,
		Grade:       Grade(total),
		BaseScore:   base,
		BonusScore:  bonus,
		Breakdown:   breakdown,
		Bonuses:     bonuses,
		Suggestions: suggestions(breakdown, record),
	}
}

// Grade maps a total score to a letter grade
func Grade(total int) string {
	switch {
	case total >= 90:
		return "A+"
	case total >= 80:
		return "A"
	case total >= 70:
		return "B"
	case total >= 60:
		return "C"
	case total >= 50:
		return "D"
	default:
		return "F"
	}
}

func scoreContact(c types.ContactInfo) types.SectionScore {
	score := 0
	if types.HasValue(c.Name) {
		score += namePoints
	}
	if types.HasValue(c.Email) {
		score += emailPoints
	}
	if types.HasValue(c.Phone) {
		score += phonePoints
	}
	if types.HasValue(c.LinkedIn) {
		score += linkedInPoints
	}
	return types.SectionScore{
		Score:   min(score, contactWeight),
		Max:     contactWeight,
		Details: fmt.Sprintf("%d/4 fields", c.CompleteFields()),
	}
}

func scoreSummary(summary *string) types.SectionScore {
	length := utf8.RuneCountInString(types.Deref(summary))
	score := 0
	switch {
	case length >= 200:
		score = 10
	case length >= 100:
		score = 7
	case length >= 50:
		score = 5
	case length > 0:
		score = 3
	}
	return types.SectionScore{Score: score, Max: summaryWeight, Details: fmt.Sprintf("%d chars", length)}
}

func scoreSkills(skills []string) types.SectionScore {
	n := len(skills)
	score := 0
	switch {
	case n >= 10:
		score = 20
	case n >= 7:
		score = 15
	case n >= 4:
		score = 10
	case n >= 1:
		score = 5
	}
	return types.SectionScore{Score: score, Max: skillsWeight, Details: fmt.Sprintf("%d skills found", n)}
}

func scoreExperience(entries []types.WorkExperience) types.SectionScore {
	n := len(entries)
	detailed := 0
	for _, e := range entries {
		if e.IsDetailed() {
			detailed++
		}
	}
	score := 0
	switch {
	case n >= 3 && detailed >= 2:
		score = 30
	case n >= 2 && detailed >= 1:
		score = 22
	case n >= 1:
		score = 15
	}
	return types.SectionScore{
		Score:   score,
		Max:     experienceWeight,
		Details: fmt.Sprintf("%d positions, %d with details", n, detailed),
	}
}

func scoreEducation(entries []types.Education) types.SectionScore {
	n := len(entries)
	withDegree := 0
	for _, e := range entries {
		if types.HasValue(e.Degree) {
			withDegree++
		}
	}
	score := 0
	switch {
	case n >= 1 && withDegree >= 1:
		score = 15
	case n >= 1:
		score = 10
	}
	return types.SectionScore{Score: score, Max: educationWeight, Details: fmt.Sprintf("%d entries", n)}
}

// scoreCount awards two points per item up to limit
func scoreCount(n, limit int, noun string) types.SectionScore {
	return types.SectionScore{Score: min(n*2, limit), Max: limit, Details: fmt.Sprintf("%d %s", n, noun)}
}

func computeBonuses(record *types.ParsedResume) map[string]int {
	bonuses := make(map[string]int)
	if len(record.Skills) >= 10 {
		bonuses[types.BonusManySkills] = manySkillsBonus
	}
	if len(record.Experience) >= 5 {
		bonuses[types.BonusSeniorExp] = seniorExpBonus
	}
	if hasAdvancedDegree(record.Education) {
		bonuses[types.BonusAdvancedDegree] = advancedDegreeBonus
	}
	if len(record.Certifications) >= 1 {
		bonuses[types.BonusCertifications] = certificationsBonus
	}
	if record.Contact.CompleteFields() == 4 {
		bonuses[types.BonusCompleteContact] = completeContactBonus
	}
	return bonuses
}

func hasAdvancedDegree(entries []types.Education) bool {
	for _, e := range entries {
		degree := strings.ToLower(types.Deref(e.Degree))
		for _, marker := range advancedDegreeMarkers {
			if strings.Contains(degree, marker) {
				return true
			}
		}
	}
	return false
}

func suggestions(breakdown map[string]types.SectionScore, record *types.ParsedResume) []string {
	out := make([]string, 0)
	if breakdown[types.SectionContact].Score < 10 {
		out = append(out, SuggestContact)
	}
	if breakdown[types.SectionSummary].Score < 7 {
		out = append(out, SuggestSummary)
	}
	if breakdown[types.SectionSkills].Score < 15 {
		out = append(out, SuggestSkills)
	}
	if breakdown[types.SectionExperience].Score < 22 {
		out = append(out, SuggestExperience)
	}
	if breakdown[types.SectionEducation].Score < 10 {
		out = append(out, SuggestEducation)
	}
	if len(record.Certifications) == 0 {
		out = append(out, SuggestCertifications)
	}
	return out
}
