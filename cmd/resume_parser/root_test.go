package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/types"
)

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "Smart Resume Parser 1.0.0", strings.TrimSpace(stdout))
}

func TestLoadConfig_FlagsOverride(t *testing.T) {
	t.Setenv("RESUME_PARSER_CONCURRENCY", "2")

	resetFlags(rootCmd)
	require.NoError(t, parseCmd.ParseFlags([]string{"--concurrency", "8", "--annotator", "none", "--raw"}))
	t.Cleanup(func() { resetFlags(rootCmd) })

	cfg, err := loadConfig(parseCmd)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.Equal(t, "none", cfg.Annotator)
	assert.True(t, cfg.IncludeRawText)
}

func TestLoadConfig_EnvWhenFlagUnset(t *testing.T) {
	t.Setenv("RESUME_PARSER_CONCURRENCY", "2")

	resetFlags(rootCmd)
	require.NoError(t, parseCmd.ParseFlags(nil))

	cfg, err := loadConfig(parseCmd)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Concurrency)
}

func TestLoadConfig_InvalidAnnotator(t *testing.T) {
	resetFlags(rootCmd)
	require.NoError(t, parseCmd.ParseFlags([]string{"--annotator", "magic"}))
	t.Cleanup(func() { resetFlags(rootCmd) })

	_, err := loadConfig(parseCmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Annotator")
}

func TestBuildParser(t *testing.T) {
	text := "Jane Doe\njane@example.com"

	for _, name := range []string{"heuristic", "none"} {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Annotator = name

			parser, cleanup, err := buildParser(context.Background(), cfg, zap.NewNop())
			require.NoError(t, err)
			defer cleanup()

			record, err := parser.Parse(context.Background(), text, false)
			require.NoError(t, err)
			assert.Equal(t, "jane@example.com", types.Deref(record.Contact.Email))
		})
	}

	t.Run("gemini without key", func(t *testing.T) {
		cfg := config.Default()
		cfg.Annotator = "gemini"
		cfg.GeminiAPIKey = ""

		_, cleanup, err := buildParser(context.Background(), cfg, zap.NewNop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API key is required")
		cleanup()
	})
}

func TestLimiterConfig(t *testing.T) {
	cfg := limiterConfig(config.RateLimitConfig{
		Enabled:         true,
		DefaultLimit:    10,
		DefaultWindow:   time.Second,
		CleanupInterval: time.Minute,
		Whitelist:       "10.0.0.1, 10.0.0.2",
		Blacklist:       "192.168.1.9",
	})

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 10, cfg.DefaultLimit)
	assert.Equal(t, time.Second, cfg.DefaultWindow)
	assert.True(t, cfg.Whitelist["10.0.0.2"])
	assert.True(t, cfg.Blacklist["192.168.1.9"])
	assert.NotEmpty(t, cfg.EndpointConfigs)
}
