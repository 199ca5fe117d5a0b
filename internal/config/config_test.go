package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "Smart Resume Parser", cfg.AppName)
	assert.Equal(t, "1.0.0", cfg.AppVersion)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, int64(10<<20), cfg.MaxFileSize)
	assert.Equal(t, []string{".pdf", ".docx", ".odt", ".txt", ".html"}, cfg.AllowedExtensions)
	assert.Equal(t, "heuristic", cfg.Annotator)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, time.Minute, cfg.RateLimit.DefaultWindow)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
port: 9090
debug: true
max_file_size: 2048
allowed_extensions: [PDF, .TXT]
annotator: None
rate_limit:
  default_limit: 5
  default_window: 30s
`)

	cfg, err := Load(NewViper(), path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, int64(2048), cfg.MaxFileSize)
	assert.Equal(t, []string{".pdf", ".txt"}, cfg.AllowedExtensions)
	assert.Equal(t, "none", cfg.Annotator)
	assert.Equal(t, 5, cfg.RateLimit.DefaultLimit)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.DefaultWindow)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoad_JSONFile(t *testing.T) {
	path := writeConfig(t, "config.json", `{"port": 7000, "include_raw_text": true}`)

	cfg, err := Load(NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
	assert.True(t, cfg.IncludeRawText)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("RESUME_PARSER_PORT", "9191")
	t.Setenv("RESUME_PARSER_ALLOWED_EXTENSIONS", ".pdf,.docx")
	t.Setenv("DATABASE_URL", "postgres://localhost/resumes")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg, err := Load(NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Port)
	assert.Equal(t, []string{".pdf", ".docx"}, cfg.AllowedExtensions)
	assert.Equal(t, "postgres://localhost/resumes", cfg.DatabaseURL)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "config.yaml", "port: 9090\n")
	t.Setenv("RESUME_PARSER_PORT", "9292")

	cfg, err := Load(NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, 9292, cfg.Port)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(NewViper(), "/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeConfig(t, "config.json", `{ invalid json }`)

	_, err := Load(NewViper(), path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"port too high", func(c *Config) { c.Port = 70000 }, "Config.Port"},
		{"port zero", func(c *Config) { c.Port = 0 }, "Config.Port"},
		{"negative file size", func(c *Config) { c.MaxFileSize = -1 }, "Config.MaxFileSize"},
		{"no extensions", func(c *Config) { c.AllowedExtensions = nil }, "Config.AllowedExtensions"},
		{"extension without dot", func(c *Config) { c.AllowedExtensions = []string{"pdf"} }, "Config.AllowedExtensions[0]"},
		{"unknown annotator", func(c *Config) { c.Annotator = "spacy" }, "Config.Annotator"},
		{"gemini without key", func(c *Config) { c.Annotator = "gemini" }, "Config.GeminiAPIKey"},
		{"too much concurrency", func(c *Config) { c.Concurrency = 1000 }, "Config.Concurrency"},
		{"zero rate window", func(c *Config) { c.RateLimit.DefaultWindow = 0 }, "Config.RateLimit.DefaultWindow"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_GeminiWithKey(t *testing.T) {
	cfg := Default()
	cfg.Annotator = "gemini"
	cfg.GeminiAPIKey = "key"
	assert.NoError(t, cfg.Validate())
}

func TestAllowsExtension(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.AllowsExtension(".pdf"))
	assert.True(t, cfg.AllowsExtension(".PDF"))
	assert.False(t, cfg.AllowsExtension(".exe"))
	assert.False(t, cfg.AllowsExtension(""))
}
