package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score <record.json|->",
	Short: "Score a parsed resume record",
	Long:  "Read a parsed resume record as JSON (from a file, or stdin with \"-\"), validate it and print its score report.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

var (
	scoreOutputFile string
	scorePretty     bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Write the report to this file instead of stdout")
	scoreCmd.Flags().BoolVar(&scorePretty, "pretty", false, "Print a human-readable report instead of JSON")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	record, err := decodeRecord(data)
	if err != nil {
		return err
	}

	if scorePretty {
		observability.NewPrinter(cmd.OutOrStdout()).PrintScoreReport(scoring.Score(record))
		return nil
	}

	report, err := json.MarshalIndent(scoring.Score(record), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal score report: %w", err)
	}
	report = append(report, '\n')

	if scoreOutputFile != "" {
		if err := os.WriteFile(scoreOutputFile, report, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}
	_, err = cmd.OutOrStdout().Write(report)
	return err
}

// readInput reads path, or stdin when path is "-"
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return data, nil
}

// decodeRecord decodes a strict ParsedResume and checks it against the
// record schema. A parse output document ({"file", "record", ...}) is
// accepted as well.
func decodeRecord(data []byte) (*types.ParsedResume, error) {
	var wrapped parseOutput
	if err := strictDecode(data, &wrapped); err == nil && wrapped.Record != nil {
		data, err = json.Marshal(wrapped.Record)
		if err != nil {
			return nil, fmt.Errorf("failed to re-encode record: %w", err)
		}
	}

	var record types.ParsedResume
	if err := strictDecode(data, &record); err != nil {
		return nil, fmt.Errorf("invalid record JSON: %w", err)
	}
	record.FillDefaults()

	if err := schemas.Validate(schemas.ParsedResume, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func strictDecode(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
