package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-parser/internal/annotate"
)

func extractSkills(text string) []string {
	return ExtractSkills(text, Segment(text), annotate.Tokenize(text))
}

func TestExtractSkills_Vocabulary(t *testing.T) {
	skills := extractSkills("Built services in Go and python with Spring Boot, Node.js and CI/CD on AWS.")

	assert.Equal(t, []string{"AWS", "CI/CD", "Go", "Node.js", "Spring", "Spring Boot", "python"}, skills)
}

func TestExtractSkills_PhraseDoesNotSpanLines(t *testing.T) {
	skills := extractSkills("Machine\nLearning")

	assert.NotContains(t, skills, "Machine\nLearning")
}

func TestExtractSkills_SectionFragments(t *testing.T) {
	text := "SKILLS\nDistributed systems, Team leadership\n\nEXPERIENCE\nnothing"

	skills := extractSkills(text)

	assert.Equal(t, []string{"Distributed systems", "Team leadership"}, skills)
}

func TestExtractSkills_NewlineSplitKeepsWholeLines(t *testing.T) {
	text := "SKILLS\nDistributed systems, Team leadership\nMentoring\n"

	skills := extractSkills(text)

	assert.Equal(t, []string{
		"Distributed systems",
		"Distributed systems, Team leadership",
		"Mentoring",
		"Team leadership\nMentoring",
	}, skills)
}

func TestExtractSkills_LongFragmentsDropped(t *testing.T) {
	text := "SKILLS\nA very long description of everything I have ever done at work, Go\n"

	skills := extractSkills(text)

	assert.Contains(t, skills, "Go")
	for _, s := range skills {
		assert.Less(t, len(s), 50)
	}
}

func TestExtractSkills_CaseVariantsAreDistinct(t *testing.T) {
	text := "Python developer\nSKILLS\npython; SQL\n"

	skills := extractSkills(text)

	assert.Equal(t, []string{"Python", "SQL", "python"}, skills)
}

func TestSplitSkillsSection_EachDelimiterSplitsWholeBody(t *testing.T) {
	parts := splitSkillsSection("Go | Rust, C")

	assert.Equal(t, []string{"Go | Rust", "C", "Go", "Rust, C"}, parts)
}
