// Package types provides type definitions for structured data used throughout the resume-parser system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ParsedResume is the structured record extracted from résumé text.
// Optional scalars are pointers so they serialize as null; list fields are
// never nil once FillDefaults has run and serialize as [].
type ParsedResume struct {
	Contact        ContactInfo      `json:"contact"`
	Summary        *string          `json:"summary"`
	Skills         []string         `json:"skills"`
	Experience     []WorkExperience `json:"experience"`
	Education      []Education      `json:"education"`
	Certifications []string         `json:"certifications"`
	Languages      []string         `json:"languages"`
	RawText        *string          `json:"raw_text"`
}

// ContactInfo holds the candidate's contact details
type ContactInfo struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	LinkedIn *string `json:"linkedin"`
	Location *string `json:"location"`
}

// WorkExperience is a single position. Dates are kept as the raw matched text.
type WorkExperience struct {
	Company     *string  `json:"company"`
	Title       *string  `json:"title"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	Description *string  `json:"description"`
	Highlights  []string `json:"highlights"`
}

// Education is a single degree mention
type Education struct {
	Institution  *string `json:"institution"`
	Degree       *string `json:"degree"`
	FieldOfStudy *string `json:"field_of_study"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	GPA          *string `json:"gpa"`
}

// NewParsedResume returns a record with every list initialized and every scalar absent.
func NewParsedResume() *ParsedResume {
	r := &ParsedResume{}
	r.FillDefaults()
	return r
}

// FillDefaults replaces nil lists with empty ones, including nested highlights.
func (r *ParsedResume) FillDefaults() {
	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Experience == nil {
		r.Experience = []WorkExperience{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Certifications == nil {
		r.Certifications = []string{}
	}
	if r.Languages == nil {
		r.Languages = []string{}
	}
	for i := range r.Experience {
		if r.Experience[i].Highlights == nil {
			r.Experience[i].Highlights = []string{}
		}
	}
}

// CompleteFields reports how many of name, email, phone and linkedin are set.
func (c ContactInfo) CompleteFields() int {
	n := 0
	for _, f := range []*string{c.Name, c.Email, c.Phone, c.LinkedIn} {
		if HasValue(f) {
			n++
		}
	}
	return n
}

// IsDetailed reports whether the position has a title, a company and at
// least a description or one highlight.
func (w WorkExperience) IsDetailed() bool {
	return HasValue(w.Title) && HasValue(w.Company) && (HasValue(w.Description) || len(w.Highlights) > 0)
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}

// HasValue reports whether p is set and non-empty
func HasValue(p *string) bool {
	return p != nil && *p != ""
}

// Deref returns the pointed-to string or "" when p is nil
func Deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
