package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/types"
)

func TestScoreCommand_File(t *testing.T) {
	record := parsing.Extract(janeResume, nil)
	data, err := json.Marshal(record)
	require.NoError(t, err)
	path := writeFile(t, t.TempDir(), "jane.json", string(data))

	stdout, _, err := executeCommand(t, "", "score", path)
	require.NoError(t, err)

	var report types.ScoreReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, scoring.Score(record).TotalScore, report.TotalScore)
	assert.Equal(t, scoring.Grade(report.TotalScore), report.Grade)
}

func TestScoreCommand_StdinAndOutFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")

	stdout, _, err := executeCommand(t, `{"contact":{"name":"Jane Doe"},"skills":["Go"]}`, "score", "-", "--out", out)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var report types.ScoreReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Contains(t, report.Breakdown, types.SectionContact)
}

func TestScoreCommand_AcceptsParseOutput(t *testing.T) {
	doc := parseOutput{File: "jane.txt", Record: parsing.Extract(janeResume, nil)}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	stdout, _, err := executeCommand(t, string(data), "score", "-")
	require.NoError(t, err)

	var report types.ScoreReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, scoring.Score(doc.Record).TotalScore, report.TotalScore)
}

func TestScoreCommand_InvalidInput(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		errorString string
	}{
		{"malformed JSON", `{"skills":`, "invalid record JSON"},
		{"unknown field", `{"hobbies":["chess"]}`, "invalid record JSON"},
		{"duplicate skills", `{"skills":["Go","Go"]}`, "validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, tt.input, "score", "-")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestScoreCommand_MissingFile(t *testing.T) {
	_, _, err := executeCommand(t, "", "score", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input file")
}

func TestScoreCommand_Pretty(t *testing.T) {
	stdout, _, err := executeCommand(t, `{"contact":{"name":"Jane Doe"},"skills":["Go"]}`, "score", "--pretty", "-")
	require.NoError(t, err)
	assert.Contains(t, stdout, "SCORE REPORT")
	assert.Contains(t, stdout, "Suggestions:")
}
