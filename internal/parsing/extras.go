package parsing

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-parser/internal/annotate"
)

// ExtractSummary returns the whitespace-collapsed summary section, truncated
// to 1000 characters, or nil when there is no summary header.
func ExtractSummary(sections *Sections) *string {
	body, ok := sections.Locate(SectionSummary)
	if !ok {
		return nil
	}
	summary := strings.TrimSpace(whitespacePattern.ReplaceAllString(body, " "))
	summary = truncateRunes(summary, maxSummaryLength)
	return &summary
}

// ExtractCertifications returns up to twenty bullet-stripped lines of the
// certifications section.
func ExtractCertifications(sections *Sections) []string {
	certs := make([]string, 0)
	body, ok := sections.Locate(SectionCertifications)
	if !ok {
		return certs
	}
	for _, line := range strings.Split(body, "\n") {
		line = stripBullet(strings.TrimSpace(line))
		if line == "" || utf8.RuneCountInString(line) >= maxCertificationLine {
			continue
		}
		certs = append(certs, line)
		if len(certs) == maxCertifications {
			break
		}
	}
	return certs
}

// ExtractLanguages unions common language names found anywhere in the text
// with language entities from the annotator, sorted.
func ExtractLanguages(text string, ann *annotate.Annotation) []string {
	set := make(map[string]struct{})
	lower := strings.ToLower(text)
	for _, lang := range commonLanguages {
		if strings.Contains(lower, strings.ToLower(lang)) {
			set[lang] = struct{}{}
		}
	}
	for _, e := range ann.Filter(annotate.CategoryLanguage) {
		set[e.Text] = struct{}{}
	}

	langs := make([]string, 0, len(set))
	for l := range set {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return langs
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
