package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>...",
	Short: "Parse resume documents into structured JSON",
	Long: "Extract text from each resume document, parse it into a structured record and print the records as a JSON array. " +
		"With --out, one <name>.json file per document is written instead.",
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

var (
	parseScore       bool
	parseRaw         bool
	parseValidate    bool
	parseOutDir      string
	parseConcurrency int
	parseVerbose     bool
)

func init() {
	parseCmd.Flags().BoolVar(&parseScore, "score", false, "Attach a score report to each record")
	parseCmd.Flags().BoolVar(&parseRaw, "raw", false, "Include the extracted text in each record")
	parseCmd.Flags().BoolVar(&parseValidate, "validate", false, "Validate each record against the parsed_resume schema")
	parseCmd.Flags().StringVarP(&parseOutDir, "out", "o", "", "Directory to write one JSON file per document")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a summary of each record to stderr")
	parseCmd.Flags().IntVarP(&parseConcurrency, "concurrency", "c", 4, "Documents parsed in parallel")

	rootCmd.AddCommand(parseCmd)
}

// parseOutput is the JSON written for one document
type parseOutput struct {
	File   string              `json:"file"`
	Hash   string              `json:"hash,omitempty"`
	Record *types.ParsedResume `json:"record,omitempty"`
	Score  *types.ScoreReport  `json:"score,omitempty"`
	Error  string              `json:"error,omitempty"`
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	parser, cleanup, err := buildParser(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	results, err := parseFiles(ctx, parser, args, cfg.Concurrency, cfg.IncludeRawText, log)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.ErrOrStderr())
	outputs := make([]parseOutput, 0, len(results))
	for i := range results {
		res := &results[i]
		out := parseOutput{File: res.Path}
		if res.Err == nil && parseValidate {
			if err := schemas.Validate(schemas.ParsedResume, res.Record); err != nil {
				res.Err = fmt.Errorf("record failed schema validation: %w", err)
			}
		}
		if res.Err != nil {
			out.Error = res.Err.Error()
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", res.Path, res.Err)
		} else {
			out.Hash = res.Meta.Hash
			out.Record = res.Record
			if parseScore {
				out.Score = res.Report
			}
			if parseVerbose {
				printer.PrintRecord(filepath.Base(res.Path), res.Record)
				if parseScore {
					printer.PrintScoreReport(res.Report)
				}
			}
		}
		outputs = append(outputs, out)
	}

	if parseOutDir != "" {
		if err := writeParseOutputs(cmd, parseOutDir, outputs); err != nil {
			return err
		}
	} else {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(outputs); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if n := failures(results); n > 0 {
		log.Warn("some documents failed", zap.Int("failed", n), zap.Int("total", len(results)))
		return fmt.Errorf("%d of %d documents failed", n, len(results))
	}
	return nil
}

// writeParseOutputs writes one <stem>.json per successful document
func writeParseOutputs(cmd *cobra.Command, dir string, outputs []parseOutput) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for _, out := range outputs {
		if out.Error != "" {
			continue
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", out.File, err)
		}
		path := filepath.Join(dir, ingestion.Stem(out.File)+".json")
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", path)
	}
	return nil
}
