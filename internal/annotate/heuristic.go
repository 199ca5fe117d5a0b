package annotate

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Heuristic is a dictionary and layout based Annotator. It needs no model or
// network access: places and languages come from fixed gazetteers, and the
// person is the first short title-cased line near the top of the document.
type Heuristic struct{}

// NewHeuristic returns the heuristic annotator
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

var places = []string{
	// countries
	"United States", "USA", "Canada", "Mexico", "Brazil", "Argentina", "Chile", "Colombia", "Peru",
	"United Kingdom", "UK", "England", "Scotland", "Ireland", "France", "Germany", "Spain", "Portugal",
	"Italy", "Netherlands", "Belgium", "Switzerland", "Austria", "Sweden", "Norway", "Denmark",
	"Finland", "Poland", "Czech Republic", "Hungary", "Romania", "Greece", "Turkey", "Ukraine",
	"Russia", "Israel", "Egypt", "Nigeria", "Kenya", "South Africa", "Morocco", "India", "Pakistan",
	"Bangladesh", "China", "Japan", "South Korea", "Korea", "Vietnam", "Thailand", "Singapore",
	"Malaysia", "Indonesia", "Philippines", "Australia", "New Zealand", "United Arab Emirates", "UAE",
	"Saudi Arabia", "Qatar",
	// US states
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado", "Connecticut", "Delaware",
	"Florida", "Hawaii", "Idaho", "Illinois", "Indiana", "Iowa", "Kansas", "Kentucky", "Louisiana",
	"Maine", "Maryland", "Massachusetts", "Michigan", "Minnesota", "Mississippi", "Missouri",
	"Montana", "Nebraska", "Nevada", "New Hampshire", "New Jersey", "New Mexico", "New York",
	"North Carolina", "North Dakota", "Ohio", "Oklahoma", "Oregon", "Pennsylvania", "Rhode Island",
	"South Carolina", "South Dakota", "Tennessee", "Texas", "Utah", "Vermont", "Virginia",
	"Washington", "West Virginia", "Wisconsin", "Wyoming",
	// cities
	"San Francisco", "Los Angeles", "San Diego", "San Jose", "Seattle", "Portland", "Denver",
	"Austin", "Dallas", "Houston", "Chicago", "Boston", "New York City", "NYC", "Brooklyn",
	"Philadelphia", "Atlanta", "Miami", "Phoenix", "Detroit", "Minneapolis", "Pittsburgh",
	"Toronto", "Vancouver", "Montreal", "London", "Manchester", "Edinburgh", "Dublin", "Paris",
	"Berlin", "Munich", "Hamburg", "Frankfurt", "Amsterdam", "Rotterdam", "Brussels", "Zurich",
	"Geneva", "Vienna", "Stockholm", "Oslo", "Copenhagen", "Helsinki", "Warsaw", "Krakow", "Prague",
	"Budapest", "Madrid", "Barcelona", "Lisbon", "Rome", "Milan", "Athens", "Istanbul", "Kyiv",
	"Moscow", "Tel Aviv", "Cairo", "Lagos", "Nairobi", "Cape Town", "Johannesburg", "Dubai",
	"Mumbai", "Delhi", "New Delhi", "Bangalore", "Bengaluru", "Hyderabad", "Chennai", "Pune",
	"Beijing", "Shanghai", "Shenzhen", "Hong Kong", "Taipei", "Tokyo", "Osaka", "Seoul", "Hanoi",
	"Bangkok", "Jakarta", "Manila", "Kuala Lumpur", "Sydney", "Melbourne", "Auckland",
	"Sao Paulo", "Buenos Aires", "Mexico City", "Bogota", "Lima", "Santiago",
}

var languageNames = []string{
	"English", "Spanish", "French", "German", "Chinese", "Mandarin", "Cantonese", "Japanese",
	"Korean", "Portuguese", "Italian", "Russian", "Arabic", "Hindi", "Dutch", "Swedish",
	"Norwegian", "Danish", "Finnish", "Polish", "Turkish", "Vietnamese", "Thai", "Indonesian",
	"Latin", "Greek", "Hebrew", "Persian", "Farsi", "Urdu", "Bengali", "Punjabi", "Tamil",
	"Telugu", "Marathi", "Swahili", "Tagalog", "Ukrainian", "Czech", "Slovak", "Hungarian",
	"Romanian", "Bulgarian", "Serbian", "Croatian", "Malay", "Catalan", "Afrikaans",
}

// words that disqualify a line from being a person's name
var nonNameWords = map[string]bool{
	"resume": true, "résumé": true, "curriculum": true, "vitae": true, "cv": true,
	"summary": true, "profile": true, "objective": true, "experience": true, "education": true,
	"skills": true, "contact": true, "references": true, "certifications": true,
	"engineer": true, "developer": true, "manager": true, "director": true, "analyst": true,
	"consultant": true, "specialist": true, "designer": true, "architect": true, "intern": true,
	"senior": true, "junior": true, "lead": true, "university": true, "college": true,
	"street": true, "avenue": true, "road": true,
}

var (
	placePattern    = gazetteerPattern(places)
	languagePattern = gazetteerPattern(languageNames)
	nameWordPattern = regexp.MustCompile(`^(?:\p{Lu}\.|\p{Lu}[\p{L}'’\-]*)$`)
)

// gazetteerPattern compiles a case-sensitive whole-word alternation, longest names first
func gazetteerPattern(names []string) *regexp.Regexp {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	quoted := make([]string, len(sorted))
	for i, n := range sorted {
		quoted[i] = regexp.QuoteMeta(n)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// Annotate tags person, place and language entities in document order
func (h *Heuristic) Annotate(_ context.Context, text string) (*Annotation, error) {
	entities := make([]Entity, 0)

	person, hasPerson := findPerson(text)
	if hasPerson {
		entities = append(entities, person)
	}

	for _, loc := range placePattern.FindAllStringIndex(text, -1) {
		if hasPerson && loc[0] < person.End && loc[1] > person.Start {
			continue
		}
		entities = append(entities, Entity{Category: CategoryPlace, Start: loc[0], End: loc[1], Text: text[loc[0]:loc[1]]})
	}

	for _, loc := range languagePattern.FindAllStringIndex(text, -1) {
		entities = append(entities, Entity{Category: CategoryLanguage, Start: loc[0], End: loc[1], Text: text[loc[0]:loc[1]]})
	}

	sort.SliceStable(entities, func(i, j int) bool { return entities[i].Start < entities[j].Start })

	return &Annotation{Entities: entities, Tokens: Tokenize(text)}, nil
}

// findPerson returns the first of the leading five non-empty lines that
// looks like a personal name: two to four title-cased words, no digits.
func findPerson(text string) (Entity, bool) {
	offset := 0
	seen := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		lineStart := offset
		offset += len(line)

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		seen++
		if seen > 5 {
			break
		}
		if looksLikeName(trimmed) {
			start := lineStart + strings.Index(line, trimmed)
			return Entity{Category: CategoryPerson, Start: start, End: start + len(trimmed), Text: trimmed}, true
		}
	}
	return Entity{}, false
}

func looksLikeName(line string) bool {
	if len(line) >= 50 || strings.ContainsAny(line, "@:|,/") {
		return false
	}
	for _, r := range line {
		if unicode.IsDigit(r) {
			return false
		}
	}
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if nonNameWords[strings.ToLower(w)] || !nameWordPattern.MatchString(w) {
			return false
		}
	}
	return true
}
