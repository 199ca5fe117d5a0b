package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/fetch"
	"github.com/jonathan/resume-parser/internal/ingestion"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Extract cleaned text from a resume document",
	Long: "Extract and clean the text of a resume from a local file or a URL. " +
		"Writes <name>.txt and <name>.meta.json to the output directory.",
	RunE: runIngest,
}

var (
	ingestFile    string
	ingestURL     string
	ingestOutDir  string
	ingestTimeout time.Duration
)

func init() {
	ingestCmd.Flags().StringVar(&ingestFile, "file", "", "Path to a resume document")
	ingestCmd.Flags().StringVar(&ingestURL, "url", "", "URL of a resume document or page")
	ingestCmd.Flags().StringVarP(&ingestOutDir, "out", "o", "", "Output directory (required)")
	ingestCmd.Flags().DurationVar(&ingestTimeout, "timeout", fetch.DefaultTimeout, "Download timeout for --url")
	ingestCmd.MarkFlagsMutuallyExclusive("file", "url")
	ingestCmd.MarkFlagsOneRequired("file", "url")
	_ = ingestCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	var (
		text string
		meta *ingestion.Metadata
		stem string
		err  error
	)

	if ingestURL != "" {
		opts := fetch.DefaultOptions()
		opts.Timeout = ingestTimeout
		text, meta, err = ingestion.IngestFromURL(cmd.Context(), ingestURL, opts)
		if err != nil {
			return fmt.Errorf("failed to ingest from URL: %w", err)
		}
		stem = ingestion.Stem(meta.Filename)
	} else {
		text, meta, err = ingestion.IngestFromFile(ingestFile)
		if err != nil {
			return fmt.Errorf("failed to ingest file: %w", err)
		}
		stem = ingestion.Stem(ingestFile)
	}

	if err := ingestion.WriteOutput(ingestOutDir, stem, text, meta); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Ingested %s (%s, %d characters)\n", meta.Filename, meta.Format, meta.Characters)
	fmt.Fprintf(cmd.OutOrStdout(), "  text:     %s.txt\n", stem)
	fmt.Fprintf(cmd.OutOrStdout(), "  metadata: %s.meta.json\n", stem)
	fmt.Fprintf(cmd.OutOrStdout(), "  sha256:   %s\n", meta.Hash)
	return nil
}
