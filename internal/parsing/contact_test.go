package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-parser/internal/annotate"
	"github.com/jonathan/resume-parser/internal/types"
)

func TestExtractContact_Patterns(t *testing.T) {
	text := "Jane Doe\nEmail: jane.doe+cv@mail.example.org | linkedin.com/in/jane-doe\nPhone: 555.987.6543"

	contact := ExtractContact(text, nil)

	assert.Equal(t, "jane.doe+cv@mail.example.org", types.Deref(contact.Email))
	assert.Equal(t, "555.987.6543", types.Deref(contact.Phone))
	assert.Equal(t, "linkedin.com/in/jane-doe", types.Deref(contact.LinkedIn))
	assert.Equal(t, "Jane Doe", types.Deref(contact.Name))
	assert.Nil(t, contact.Location)
}

func TestExtractContact_InternationalPhone(t *testing.T) {
	contact := ExtractContact("Jane\n+44 20 7946 0958", nil)

	assert.Equal(t, "+44 20 7946 0958", types.Deref(contact.Phone))
}

func TestExtractContact_LinkedInCaseInsensitive(t *testing.T) {
	contact := ExtractContact("HTTPS://WWW.LinkedIn.com/in/JaneDoe_1 more", nil)

	assert.Equal(t, "HTTPS://WWW.LinkedIn.com/in/JaneDoe_1", types.Deref(contact.LinkedIn))
}

func TestExtractContact_NameFallbackSkipsEmailAndDigits(t *testing.T) {
	text := "\n\njane@example.com\n+1 555 123 4567\nJane Doe\n"

	contact := ExtractContact(text, nil)

	assert.Equal(t, "Jane Doe", types.Deref(contact.Name))
}

func TestExtractContact_NameFallbackLimitedToFiveLines(t *testing.T) {
	text := "1\n2\n3\n4\n5\nJane Doe"

	contact := ExtractContact(text, nil)

	assert.Nil(t, contact.Name)
}

func TestExtractContact_NameFallbackRejectsLongLines(t *testing.T) {
	text := "This line is much too long to be anybody's name at all really\n"

	assert.Nil(t, ExtractContact(text, nil).Name)
}

func TestExtractContact_PersonEntityWins(t *testing.T) {
	ann := &annotate.Annotation{Entities: []annotate.Entity{
		{Category: annotate.CategoryPlace, Text: "Seattle"},
		{Category: annotate.CategoryPerson, Text: "Jane Doe"},
		{Category: annotate.CategoryPerson, Text: "John Roe"},
	}}

	contact := ExtractContact("RESUME\nJane Doe", ann)

	assert.Equal(t, "Jane Doe", types.Deref(contact.Name))
	assert.Equal(t, "Seattle", types.Deref(contact.Location))
}
