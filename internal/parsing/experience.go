package parsing

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-parser/internal/types"
)

// scanState is the state of a line-scan accumulator
type scanState int

const (
	// stateIdle means no entry is open; continuation lines are dropped
	stateIdle scanState = iota
	// stateOpen means an entry is accumulating lines
	stateOpen
)

var atSeparator = regexp.MustCompile(`(?i)\s+at\s+`)

// experienceScanner accumulates work history entries line by line
type experienceScanner struct {
	state   scanState
	current types.WorkExperience
	entries []types.WorkExperience
}

func newExperienceScanner() *experienceScanner {
	return &experienceScanner{entries: make([]types.WorkExperience, 0)}
}

// ExtractExperience scans the experience section body. Entries without a
// title or company are discarded and at most ten are returned.
func ExtractExperience(sections *Sections) []types.WorkExperience {
	body, ok := sections.Locate(SectionExperience)
	if !ok {
		return make([]types.WorkExperience, 0)
	}

	s := newExperienceScanner()
	for _, line := range strings.Split(body, "\n") {
		s.feed(strings.TrimSpace(line))
	}
	entries := s.finish()
	if len(entries) > maxExperience {
		entries = entries[:maxExperience]
	}
	return entries
}

func (s *experienceScanner) feed(line string) {
	if line == "" {
		return
	}

	dates := dateRangePattern.FindString(line)
	if dates != "" || looksLikeJobTitle(line) {
		remainder := strings.TrimSpace(dateRangePattern.ReplaceAllString(line, ""))
		if s.attach(dates, remainder) {
			return
		}
		s.flush()
		s.state = stateOpen
		s.current = types.WorkExperience{Highlights: make([]string, 0)}
		s.setDates(dates)
		s.setRole(remainder)
		return
	}

	if s.state != stateOpen {
		return
	}
	if startsWithBullet(line) {
		if h := stripBullet(line); h != "" {
			s.current.Highlights = append(s.current.Highlights, h)
		}
		return
	}
	if s.current.Description != nil {
		s.current.Description = types.StringPtr(*s.current.Description + " " + line)
	} else {
		s.current.Description = types.StringPtr(line)
	}
}

// attach completes the open entry instead of starting a new one when a
// title line and its date line arrive separately: a bare date range fills
// an undated entry, and a role line fills an entry that has only dates.
func (s *experienceScanner) attach(dates, remainder string) bool {
	if s.state != stateOpen {
		return false
	}
	c := &s.current
	hasRole := types.HasValue(c.Title) || types.HasValue(c.Company)
	switch {
	case dates != "" && remainder == "" && c.StartDate == nil && hasRole:
		s.setDates(dates)
		return true
	case dates == "" && !hasRole && c.StartDate != nil && len(c.Highlights) == 0 && c.Description == nil:
		s.setRole(remainder)
		return true
	}
	return false
}

func (s *experienceScanner) setDates(dates string) {
	if dates == "" {
		return
	}
	parts := dateSplitPattern.Split(dates, -1)
	if start := strings.TrimSpace(parts[0]); start != "" {
		s.current.StartDate = types.StringPtr(start)
	}
	if len(parts) > 1 {
		if end := strings.TrimSpace(parts[1]); end != "" {
			s.current.EndDate = types.StringPtr(end)
		}
	}
}

// setRole splits a title line on " at ", then "|", then ","
func (s *experienceScanner) setRole(line string) {
	var parts []string
	switch {
	case strings.Contains(strings.ToLower(line), " at "):
		parts = atSeparator.Split(line, -1)
	case strings.Contains(line, "|"):
		parts = strings.Split(line, "|")
	case strings.Contains(line, ","):
		parts = strings.Split(line, ",")
	default:
		parts = []string{line}
	}

	if title := strings.TrimSpace(parts[0]); title != "" {
		s.current.Title = types.StringPtr(title)
	}
	if len(parts) > 1 {
		if company := strings.TrimSpace(parts[1]); company != "" {
			s.current.Company = types.StringPtr(company)
		}
	}
}

// flush closes the open entry, keeping it only if it names a title or company
func (s *experienceScanner) flush() {
	if s.state != stateOpen {
		return
	}
	if types.HasValue(s.current.Title) || types.HasValue(s.current.Company) {
		s.entries = append(s.entries, s.current)
	}
	s.current = types.WorkExperience{}
	s.state = stateIdle
}

func (s *experienceScanner) finish() []types.WorkExperience {
	s.flush()
	return s.entries
}

func looksLikeJobTitle(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range jobTitleKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func startsWithBullet(line string) bool {
	r, _ := utf8.DecodeRuneInString(line)
	return strings.ContainsRune(bulletGlyphs, r)
}

// stripBullet removes leading bullet glyphs and spaces
func stripBullet(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, bulletGlyphs+" "))
}
