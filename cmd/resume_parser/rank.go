package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/scoring"
)

var rankCmd = &cobra.Command{
	Use:   "rank <file>...",
	Short: "Rank resume documents by score",
	Long:  "Parse and score each resume document, then print them ranked from highest to lowest score.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRank,
}

var (
	rankJSON   bool
	rankPretty bool
)

func init() {
	rankCmd.Flags().BoolVar(&rankJSON, "json", false, "Print the ranking as JSON")
	rankCmd.Flags().BoolVar(&rankPretty, "pretty", false, "Print the top resumes with their notes")
	rankCmd.Flags().IntP("concurrency", "c", 4, "Documents parsed in parallel")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
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

	ranked := scoring.Rank(rankEntries(results))
	switch {
	case rankJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(ranked); err != nil {
			return fmt.Errorf("failed to write ranking: %w", err)
		}
	case rankPretty:
		observability.NewPrinter(cmd.OutOrStdout()).PrintRanking(ranked)
	default:
		if err := writeRankTable(cmd, ranked); err != nil {
			return err
		}
	}

	if n := failures(results); n > 0 {
		return fmt.Errorf("%d of %d documents failed", n, len(results))
	}
	return nil
}

func writeRankTable(cmd *cobra.Command, ranked []scoring.Entry) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tFILE\tSCORE\tGRADE\tNOTES")
	for _, e := range ranked {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n", e.Rank, e.Label, e.Report.TotalScore, e.Report.Grade, e.Notes)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write ranking: %w", err)
	}
	return nil
}
