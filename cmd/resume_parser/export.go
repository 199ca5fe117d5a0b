package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>...",
	Short: "Export ranked parse results as JSON, CSV or XLSX",
	Long: "Parse and score each resume document and write the ranked results to a file. " +
		"The format comes from --format, or from the extension of --out.",
	Args: cobra.MinimumNArgs(1),
	RunE: runExport,
}

var (
	exportFormat     string
	exportOutputFile string
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Export format: json, csv or xlsx")
	exportCmd.Flags().StringVarP(&exportOutputFile, "out", "o", "", "Path to the export file (required)")
	exportCmd.Flags().IntP("concurrency", "c", 4, "Documents parsed in parallel")
	_ = exportCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format := export.FormatFromPath(exportOutputFile)
	if exportFormat != "" {
		var err error
		if format, err = export.ParseFormat(exportFormat); err != nil {
			return err
		}
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	parser, cleanup, err := buildParser(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	results, err := parseFiles(cmd.Context(), parser, args, cfg.Concurrency, false, log)
	if err != nil {
		return err
	}
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", res.Path, res.Err)
		}
	}

	entries := rankEntries(results)
	if len(entries) == 0 {
		return fmt.Errorf("no documents could be parsed")
	}
	if err := export.WriteFile(exportOutputFile, format, entries); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "exported %d resumes to %s (%s)\n", len(entries), exportOutputFile, format)
	return nil
}
