package parsing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-parser/internal/annotate"
	"github.com/jonathan/resume-parser/internal/types"
)

// ExtractContact applies the independent contact rules to the full text
func ExtractContact(text string, ann *annotate.Annotation) types.ContactInfo {
	var contact types.ContactInfo

	if m := emailPattern.FindString(text); m != "" {
		contact.Email = types.StringPtr(m)
	}

	for _, p := range phonePatterns {
		if m := p.FindString(text); m != "" {
			contact.Phone = types.StringPtr(m)
			break
		}
	}

	if m := linkedInPattern.FindString(text); m != "" {
		contact.LinkedIn = types.StringPtr(m)
	}

	if persons := ann.Filter(annotate.CategoryPerson); len(persons) > 0 {
		contact.Name = types.StringPtr(persons[0].Text)
	} else if name, ok := fallbackName(text); ok {
		contact.Name = types.StringPtr(name)
	}

	places := ann.Filter(annotate.CategoryPlace)
	if len(places) > 0 {
		names := make([]string, 0, maxLocationPlaces)
		for _, p := range places {
			if len(names) == maxLocationPlaces {
				break
			}
			names = append(names, p.Text)
		}
		contact.Location = types.StringPtr(strings.Join(names, ", "))
	}

	return contact
}

// fallbackName picks the first short line near the top with no email and no digits
func fallbackName(text string) (string, bool) {
	seen := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > nameFallbackLines {
			break
		}
		if utf8.RuneCountInString(line) >= maxNameLine || emailPattern.MatchString(line) {
			continue
		}
		if strings.IndexFunc(line, unicode.IsDigit) >= 0 {
			continue
		}
		return line, true
	}
	return "", false
}
