//nolint:revive // types is a standard Go package name pattern
package types

// Section names used as breakdown keys
const (
	SectionContact        = "contact"
	SectionSummary        = "summary"
	SectionSkills         = "skills"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionCertifications = "certifications"
	SectionLanguages      = "languages"
)

// Bonus names used as bonuses keys
const (
	BonusManySkills      = "many_skills"
	BonusSeniorExp       = "senior_exp"
	BonusAdvancedDegree  = "advanced_degree"
	BonusCertifications  = "certifications"
	BonusCompleteContact = "complete_contact"
)

// ScoreReport is the quality assessment of a ParsedResume
type ScoreReport struct {
	TotalScore  int                     `json:"total_score"`
	Grade       string                  `json:"grade"`
	BaseScore   int                     `json:"base_score"`
	BonusScore  int                     `json:"bonus_score"`
	Breakdown   map[string]SectionScore `json:"breakdown"`
	Bonuses     map[string]int          `json:"bonuses"`
	Suggestions []string                `json:"suggestions"`
}

// SectionScore is the capped score of one section
type SectionScore struct {
	Score   int    `json:"score"`
	Max     int    `json:"max"`
	Details string `json:"details"`
}
