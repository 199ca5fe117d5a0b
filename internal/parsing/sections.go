package parsing

import (
	"regexp"
	"sort"
	"strings"
)

// headerMatch is one header line found in the text
type headerMatch struct {
	start   int // offset where the header match begins
	end     int // offset just past the header line
	section string
}

// headerPatterns holds one compiled header pattern per section
var headerPatterns = compileHeaderPatterns()

func compileHeaderPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(sectionHeaders))
	for _, section := range sectionOrder {
		quoted := make([]string, 0, len(sectionHeaders[section]))
		for _, h := range sectionHeaders[section] {
			quoted = append(quoted, regexp.QuoteMeta(h))
		}
		patterns[section] = regexp.MustCompile(`(?i)(?:^|\n)\s*(` + strings.Join(quoted, "|") + `)\s*:?\s*\n`)
	}
	return patterns
}

// Sections holds every header found in one text and answers section lookups
// without rescanning.
type Sections struct {
	text    string
	headers []headerMatch
}

// Segment scans text once for the headers of every section
func Segment(text string) *Sections {
	headers := make([]headerMatch, 0)
	for _, section := range sectionOrder {
		for _, loc := range headerPatterns[section].FindAllStringIndex(text, -1) {
			headers = append(headers, headerMatch{start: loc[0], end: loc[1], section: section})
		}
	}
	sort.SliceStable(headers, func(i, j int) bool {
		if headers[i].start != headers[j].start {
			return headers[i].start < headers[j].start
		}
		return headers[i].end < headers[j].end
	})
	return &Sections{text: text, headers: headers}
}

// Locate returns the trimmed body of the first header of section. The body
// runs to the start of the next header of any section. A missing header or
// an empty body reports false.
func (s *Sections) Locate(section string) (string, bool) {
	for i, h := range s.headers {
		if h.section != section {
			continue
		}
		end := len(s.text)
		if i+1 < len(s.headers) {
			end = s.headers[i+1].start
		}
		if end < h.end {
			// the next header reused this header's trailing whitespace
			end = h.end
		}
		body := strings.TrimSpace(s.text[h.end:end])
		return body, body != ""
	}
	return "", false
}

// LocateSection is Segment followed by Locate
func LocateSection(text, section string) (string, bool) {
	return Segment(text).Locate(section)
}
