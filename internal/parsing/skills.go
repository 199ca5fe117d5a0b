package parsing

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-parser/internal/annotate"
)

// phrase is a vocabulary entry as a lower-cased token sequence
type phrase []string

// skillPhrases indexes the vocabulary by its first lower-cased token
var skillPhrases = buildPhraseIndex(techSkills)

func buildPhraseIndex(terms []string) map[string][]phrase {
	index := make(map[string][]phrase, len(terms))
	for _, term := range terms {
		tokens := annotate.Tokenize(term)
		if len(tokens) == 0 {
			continue
		}
		p := make(phrase, len(tokens))
		for i, t := range tokens {
			p[i] = strings.ToLower(t.Text)
		}
		index[p[0]] = append(index[p[0]], p)
	}
	return index
}

// ExtractSkills unions vocabulary matches over the whole text with the raw
// fragments of the skills section. The result is sorted and free of exact
// duplicates; matching is case-insensitive but values keep the casing they
// have in the text.
func ExtractSkills(text string, sections *Sections, tokens []annotate.Token) []string {
	set := make(map[string]struct{})

	for _, skill := range matchVocabulary(text, tokens) {
		set[skill] = struct{}{}
	}

	if body, ok := sections.Locate(SectionSkills); ok {
		for _, frag := range splitSkillsSection(body) {
			set[frag] = struct{}{}
		}
	}

	skills := make([]string, 0, len(set))
	for s := range set {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}

// matchVocabulary finds every vocabulary phrase occurring as a token sequence
func matchVocabulary(text string, tokens []annotate.Token) []string {
	lower := make([]string, len(tokens))
	for i, t := range tokens {
		lower[i] = strings.ToLower(t.Text)
	}

	var found []string
	for i := range tokens {
		for _, p := range skillPhrases[lower[i]] {
			if i+len(p) > len(tokens) || !phraseAt(lower, i, p) {
				continue
			}
			span := text[tokens[i].Start:tokens[i+len(p)-1].End]
			// a phrase never spans a line break
			if strings.ContainsRune(span, '\n') {
				continue
			}
			found = append(found, span)
		}
	}
	return found
}

func phraseAt(lower []string, i int, p phrase) bool {
	for j, word := range p {
		if lower[i+j] != word {
			return false
		}
	}
	return true
}

// splitSkillsSection splits body on every delimiter it contains, keeping
// short non-empty fragments. Each delimiter splits the whole body
// independently, so fragments from different delimiters overlap.
func splitSkillsSection(body string) []string {
	var out []string
	for _, delim := range skillDelimiters {
		if !strings.Contains(body, delim) {
			continue
		}
		for _, part := range strings.Split(body, delim) {
			cleaned := strings.TrimSpace(part)
			if cleaned != "" && utf8.RuneCountInString(cleaned) < maxSkillFragment {
				out = append(out, cleaned)
			}
		}
	}
	return out
}
