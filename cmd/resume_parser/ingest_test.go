package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/ingestion"
)

func TestIngestCommand_File(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "jane.txt", "  Jane Doe  \r\n\r\n\r\n\r\nSKILLS\r\nGo")
	outDir := filepath.Join(dir, "out")

	stdout, _, err := executeCommand(t, "", "ingest", "--file", path, "--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Ingested jane.txt (txt")

	text, err := os.ReadFile(filepath.Join(outDir, "jane.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\n\nSKILLS\nGo", string(text))

	data, err := os.ReadFile(filepath.Join(outDir, "jane.meta.json"))
	require.NoError(t, err)
	var meta ingestion.Metadata
	require.NoError(t, json.Unmarshal(data, &meta))
	assert.Equal(t, ingestion.FormatText, meta.Format)
	assert.Equal(t, ingestion.ComputeHash([]byte("  Jane Doe  \r\n\r\n\r\n\r\nSKILLS\r\nGo")), meta.Hash)
}

func TestIngestCommand_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body><nav>Home</nav><main><h1>Jane Doe</h1><p>Backend engineer</p></main></body></html>"))
	}))
	defer srv.Close()

	outDir := t.TempDir()
	stdout, _, err := executeCommand(t, "", "ingest", "--url", srv.URL+"/cv/jane", "--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "(html")

	text, err := os.ReadFile(filepath.Join(outDir, "jane.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(text), "Jane Doe")
	assert.NotContains(t, string(text), "Home")
}

func TestIngestCommand_FlagErrors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{"no source", []string{"ingest", "--out", "x"}, "at least one of the flags"},
		{"both sources", []string{"ingest", "--file", "a.txt", "--url", "http://example.com", "--out", "x"}, "none of the others can be"},
		{"no out", []string{"ingest", "--file", "a.txt"}, "required flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestIngestCommand_MissingFile(t *testing.T) {
	_, _, err := executeCommand(t, "", "ingest", "--file", filepath.Join(t.TempDir(), "none.pdf"), "--out", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}
