package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/scoring"
)

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	record := parsing.Extract(janeResume, nil)
	recordJSON, err := json.Marshal(record)
	require.NoError(t, err)
	reportJSON, err := json.Marshal(scoring.Score(record))
	require.NoError(t, err)

	recordPath := writeFile(t, dir, "record.json", string(recordJSON))
	reportPath := writeFile(t, dir, "report.json", string(reportJSON))
	badPath := writeFile(t, dir, "bad.json", `{"skills":"Go"}`)
	schemaPath := writeFile(t, dir, "custom.schema.json", `{"type":"object","required":["skills"]}`)

	t.Run("record against default schema", func(t *testing.T) {
		stdout, _, err := executeCommand(t, "", "validate", recordPath)
		require.NoError(t, err)
		assert.Contains(t, stdout, "is valid against parsed_resume")
	})

	t.Run("report against named schema", func(t *testing.T) {
		_, _, err := executeCommand(t, "", "validate", "--schema", schemas.ScoreReport, reportPath)
		require.NoError(t, err)
	})

	t.Run("schema file", func(t *testing.T) {
		_, _, err := executeCommand(t, "", "validate", "--schema", schemaPath, recordPath)
		require.NoError(t, err)
	})

	t.Run("invalid document", func(t *testing.T) {
		_, stderr, err := executeCommand(t, "", "validate", badPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not valid against parsed_resume")
		assert.Contains(t, stderr, "validation failed")
	})

	t.Run("missing document", func(t *testing.T) {
		_, _, err := executeCommand(t, "", "validate", filepath.Join(dir, "none.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}
