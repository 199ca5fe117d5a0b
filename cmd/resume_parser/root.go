package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-parser/internal/annotate"
	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/logger"
	"github.com/jonathan/resume-parser/internal/parsing"
)

var (
	configPath    string
	debugFlag     bool
	jsonLogsFlag  bool
	annotatorFlag string
)

// flagKeys maps command-line flags to config keys. A flag only overrides the
// config when it is set.
var flagKeys = map[string]string{
	"debug":       "debug",
	"log-json":    "log_json",
	"annotator":   "annotator",
	"port":        "port",
	"concurrency": "concurrency",
	"raw":         "include_raw_text",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (yaml, json or toml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogsFlag, "log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().StringVar(&annotatorFlag, "annotator", "heuristic", "Entity annotator: heuristic, gemini or none")
}

// loadConfig merges defaults, the config file, the environment and the
// command's flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := config.NewViper()
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}
	return config.Load(v, configPath)
}

// newLogger builds the logger for cfg
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.LogJSON, cfg.Debug)
}

// buildParser creates the Parser with the configured annotator. The returned
// cleanup releases any model client.
func buildParser(ctx context.Context, cfg *config.Config, log *zap.Logger) (*parsing.Parser, func(), error) {
	cleanup := func() {}

	var annotator annotate.Annotator
	switch cfg.Annotator {
	case "none":
		annotator = annotate.Nop{}
	case "gemini":
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig().WithModel(llm.TierStandard, cfg.GeminiModel), cfg.GeminiAPIKey)
		if err != nil {
			return nil, cleanup, fmt.Errorf("failed to create annotator: %w", err)
		}
		cleanup = func() {
			if err := client.Close(); err != nil {
				log.Warn("failed to close model client", zap.Error(err))
			}
		}
		annotator = annotate.NewGemini(client)
	default:
		annotator = annotate.NewHeuristic()
	}

	log.Debug("annotator ready", zap.String(logger.FieldAnnotator, cfg.Annotator))
	return parsing.New(annotator, log), cleanup, nil
}
