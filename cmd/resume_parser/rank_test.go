package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/scoring"
)

func TestRankCommand_Table(t *testing.T) {
	dir := t.TempDir()
	bob := writeFile(t, dir, "bob.txt", bobResume)
	jane := writeFile(t, dir, "jane.txt", janeResume)

	stdout, _, err := executeCommand(t, "", "rank", bob, jane)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "RANK"))
	assert.True(t, strings.HasPrefix(lines[1], "1"))
	assert.Contains(t, lines[1], "jane.txt")
	assert.Contains(t, lines[2], "bob.txt")
}

func TestRankCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	bob := writeFile(t, dir, "bob.txt", bobResume)
	jane := writeFile(t, dir, "jane.txt", janeResume)

	stdout, _, err := executeCommand(t, "", "rank", "--json", bob, jane)
	require.NoError(t, err)

	var ranked []scoring.Entry
	require.NoError(t, json.Unmarshal([]byte(stdout), &ranked))
	require.Len(t, ranked, 2)
	assert.Equal(t, "jane.txt", ranked[0].Label)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.NotEmpty(t, ranked[0].Notes)
}

func TestRankCommand_Pretty(t *testing.T) {
	jane := writeFile(t, t.TempDir(), "jane.txt", janeResume)

	stdout, _, err := executeCommand(t, "", "rank", "--pretty", jane)
	require.NoError(t, err)
	assert.Contains(t, stdout, "TOP RANKED RESUMES")
	assert.Contains(t, stdout, "#1  jane.txt")
}
