package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/annotate"
)

func TestExtractSummary_CollapsesWhitespace(t *testing.T) {
	summary := ExtractSummary(Segment("SUMMARY\n  Backend   engineer\n\twith  ten years.\n\nSKILLS\nGo\n"))

	require.NotNil(t, summary)
	assert.Equal(t, "Backend engineer with ten years.", *summary)
}

func TestExtractSummary_Truncated(t *testing.T) {
	summary := ExtractSummary(Segment("About Me\n" + strings.Repeat("é", 1500) + "\n"))

	require.NotNil(t, summary)
	assert.Equal(t, maxSummaryLength, len([]rune(*summary)))
}

func TestExtractSummary_Absent(t *testing.T) {
	assert.Nil(t, ExtractSummary(Segment("Jane Doe\n")))
}

func TestExtractCertifications(t *testing.T) {
	long := strings.Repeat("x", 200)
	text := "CERTIFICATIONS\n• AWS Solutions Architect\n- CKA\n\n" + long + "\n○ PMP\n"

	certs := ExtractCertifications(Segment(text))

	assert.Equal(t, []string{"AWS Solutions Architect", "CKA", "PMP"}, certs)
}

func TestExtractCertifications_CappedAtTwenty(t *testing.T) {
	text := "LICENSES\n" + strings.Repeat("Cert\n", 25)

	assert.Len(t, ExtractCertifications(Segment(text)), maxCertifications)
}

func TestExtractCertifications_Absent(t *testing.T) {
	certs := ExtractCertifications(Segment("nothing here"))

	assert.NotNil(t, certs)
	assert.Empty(t, certs)
}

func TestExtractLanguages(t *testing.T) {
	ann := &annotate.Annotation{Entities: []annotate.Entity{
		{Category: annotate.CategoryLanguage, Text: "Esperanto"},
		{Category: annotate.CategoryLanguage, Text: "Spanish"},
	}}

	langs := ExtractLanguages("Native ENGLISH speaker, conversational spanish", ann)

	assert.Equal(t, []string{"English", "Esperanto", "Spanish"}, langs)
}

func TestExtractLanguages_SubstringMatch(t *testing.T) {
	langs := ExtractLanguages("Studied at Thailand institute", nil)

	assert.Equal(t, []string{"Thai"}, langs)
}
