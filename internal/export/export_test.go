package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/types"
)

func sampleEntries() []scoring.Entry {
	strong := types.NewParsedResume()
	strong.Contact = types.ContactInfo{
		Name:     types.StringPtr("Jane Doe"),
		Email:    types.StringPtr("jane@example.com"),
		Phone:    types.StringPtr("555-123-4567"),
		LinkedIn: types.StringPtr("linkedin.com/in/jane"),
	}
	strong.Skills = []string{"Go", "Python", "SQL"}
	strong.Languages = []string{"English", "Spanish"}

	weak := types.NewParsedResume()
	weak.Contact.Email = types.StringPtr("bob@example.com")

	return []scoring.Entry{
		{Label: "bob.txt", Record: weak},
		{Label: "jane.pdf", Record: strong},
	}
}

func TestParseFormat(t *testing.T) {
	for input, expected := range map[string]Format{"json": FormatJSON, "CSV": FormatCSV, " xlsx ": FormatXLSX} {
		f, err := ParseFormat(input)
		require.NoError(t, err)
		assert.Equal(t, expected, f)
	}

	_, err := ParseFormat("pdf")
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatCSV, FormatFromPath("out/results.csv"))
	assert.Equal(t, FormatXLSX, FormatFromPath("results.XLSX"))
	assert.Equal(t, FormatJSON, FormatFromPath("results.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("results"))
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sampleEntries()))

	var rows []Row
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "jane.pdf", rows[0].File)
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, "Jane Doe", types.Deref(rows[0].Record.Contact.Name))
	assert.Equal(t, "bob.txt", rows[1].File)
	assert.Equal(t, 2, rows[1].Rank)
	assert.NotEmpty(t, rows[1].Report.Suggestions)
	assert.Contains(t, rows[0].Notes, "Grade")
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, sampleEntries()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, Columns, records[0])

	jane := records[1]
	assert.Equal(t, "1", jane[0])
	assert.Equal(t, "jane.pdf", jane[1])
	assert.Equal(t, "Jane Doe", jane[2])
	assert.Equal(t, "", jane[6])
	assert.Equal(t, "Go;Python;SQL", jane[7])
	assert.Equal(t, "0", jane[8])
	assert.Equal(t, "English;Spanish", jane[11])

	report := scoring.Score(sampleEntries()[1].Record)
	assert.Equal(t, report.Grade, jane[13])

	assert.Equal(t, "bob.txt", records[2][1])
}

func TestWrite_XLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatXLSX, sampleEntries()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{RankedSheet, SuggestionsSheet}, f.GetSheetList())

	rows, err := f.GetRows(RankedSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Columns, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "jane.pdf", rows[1][1])
	assert.Equal(t, "bob.txt", rows[2][1])

	suggestions, err := f.GetRows(SuggestionsSheet)
	require.NoError(t, err)
	assert.Greater(t, len(suggestions), 2)
	assert.Equal(t, []string{"rank", "file", "notes", "suggestion"}, suggestions[0])
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, nil))
	assert.JSONEq(t, `[]`, buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, FormatCSV, nil))
	assert.Equal(t, "rank,file,name,email,phone,linkedin,location,skills,experience,education,certifications,languages,total_score,grade\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, FormatXLSX, nil))
	assert.NotZero(t, buf.Len())
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, Format("pdf"), sampleEntries()))
}

func TestWrite_NilRecord(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, []scoring.Entry{{Label: "empty"}}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "0", records[1][12])
	assert.Equal(t, "F", records[1][13])
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "results.csv")

	require.NoError(t, WriteFile(path, FormatCSV, sampleEntries()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "jane.pdf")
}
