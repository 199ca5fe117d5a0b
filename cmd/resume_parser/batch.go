package main

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/logger"
	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/types"
)

// fileResult is the outcome of parsing one input document
type fileResult struct {
	Path   string
	Meta   *ingestion.Metadata
	Record *types.ParsedResume
	Report *types.ScoreReport
	Err    error
}

// parseFiles extracts and parses paths with at most concurrency documents in
// flight. Results keep the order of paths. A failing document is recorded in
// its result and does not stop the others; only cancellation of ctx does.
func parseFiles(ctx context.Context, parser *parsing.Parser, paths []string, concurrency int, includeRaw bool, log *zap.Logger) ([]fileResult, error) {
	results := make([]fileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(concurrency, 1))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fileLog := logger.WithFields(log, zap.String(logger.FieldFile, path))
			results[i] = parseFile(ctx, parser, path, includeRaw)
			if err := results[i].Err; err != nil {
				fileLog.Warn("failed to parse file", zap.Error(err))
				return nil
			}
			fileLog.Debug("parsed file",
				zap.String(logger.FieldFormat, string(results[i].Meta.Format)),
				zap.Int("total_score", results[i].Report.TotalScore),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func parseFile(ctx context.Context, parser *parsing.Parser, path string, includeRaw bool) fileResult {
	res := fileResult{Path: path}

	text, meta, err := ingestion.IngestFromFile(path)
	if err != nil {
		res.Err = err
		return res
	}
	res.Meta = meta

	record, err := parser.Parse(ctx, text, includeRaw)
	if err != nil {
		res.Err = fmt.Errorf("failed to parse resume: %w", err)
		return res
	}
	res.Record = record
	res.Report = scoring.Score(record)
	return res
}

// failures counts results with an error
func failures(results []fileResult) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// rankEntries turns successful results into ranking entries labelled by file name
func rankEntries(results []fileResult) []scoring.Entry {
	entries := make([]scoring.Entry, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		entries = append(entries, scoring.Entry{
			Label:  filepath.Base(r.Path),
			Record: r.Record,
			Report: r.Report,
		})
	}
	return entries
}
