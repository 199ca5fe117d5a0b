package parsing

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-parser/internal/types"
)

// educationScanner accumulates education entries line by line. Unlike
// experience, every opened entry is kept.
type educationScanner struct {
	state   scanState
	current types.Education
	entries []types.Education
}

func newEducationScanner() *educationScanner {
	return &educationScanner{entries: make([]types.Education, 0)}
}

// ExtractEducation scans the education section, or the whole text when the
// document has no education header, and returns at most five entries.
func ExtractEducation(text string, sections *Sections) []types.Education {
	body, ok := sections.Locate(SectionEducation)
	if !ok {
		body = text
	}

	s := newEducationScanner()
	for _, line := range strings.Split(body, "\n") {
		s.feed(strings.TrimSpace(line))
	}
	entries := s.finish()
	if len(entries) > maxEducation {
		entries = entries[:maxEducation]
	}
	return entries
}

func (s *educationScanner) feed(line string) {
	if line == "" {
		return
	}

	if degree, ok := matchDegree(line); ok {
		s.flush()
		s.state = stateOpen
		s.current = types.Education{Degree: types.StringPtr(degree)}
		if m := fieldOfStudyPattern.FindStringSubmatch(line); m != nil {
			if field := strings.TrimSpace(m[1]); field != "" {
				s.current.FieldOfStudy = types.StringPtr(field)
			}
		}
		s.captureYears(line)
		s.captureGPA(line)
		return
	}

	if s.state != stateOpen {
		return
	}
	if s.current.Institution == nil && strings.IndexFunc(line, unicode.IsLetter) >= 0 && !gpaPattern.MatchString(line) {
		s.current.Institution = types.StringPtr(line)
	}
	if s.current.EndDate == nil {
		s.captureYears(line)
	}
	s.captureGPA(line)
}

// captureYears stores a single year as the end date, or a pair as start and end
func (s *educationScanner) captureYears(line string) {
	years := yearPattern.FindAllString(line, -1)
	switch len(years) {
	case 0:
	case 1:
		s.current.EndDate = types.StringPtr(years[0])
	default:
		s.current.StartDate = types.StringPtr(years[0])
		s.current.EndDate = types.StringPtr(years[len(years)-1])
	}
}

func (s *educationScanner) captureGPA(line string) {
	if s.current.GPA != nil {
		return
	}
	if m := gpaPattern.FindStringSubmatch(line); m != nil {
		s.current.GPA = types.StringPtr(m[1])
	}
}

func (s *educationScanner) flush() {
	if s.state != stateOpen {
		return
	}
	s.entries = append(s.entries, s.current)
	s.current = types.Education{}
	s.state = stateIdle
}

func (s *educationScanner) finish() []types.Education {
	s.flush()
	return s.entries
}

// matchDegree returns the degree token of the first degree family found in line
func matchDegree(line string) (string, bool) {
	for _, p := range degreePatterns {
		if m := p.FindStringSubmatch(line); m != nil {
			return m[1], true
		}
	}
	return "", false
}
