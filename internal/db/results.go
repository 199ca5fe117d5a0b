package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-parser/internal/types"
)

// SaveResult stores a parse result and returns it with its ID and timestamp
func (db *DB) SaveResult(ctx context.Context, input *ResultInput) (*Result, error) {
	if input == nil || input.Record == nil {
		return nil, fmt.Errorf("result record is required")
	}

	recordJSON, reportJSON, err := encodeResult(input)
	if err != nil {
		return nil, err
	}

	var totalScore *int
	var grade *string
	if input.Report != nil {
		totalScore = &input.Report.TotalScore
		grade = &input.Report.Grade
	}

	result := &Result{
		Filename:    input.Filename,
		ContentHash: input.ContentHash,
		Record:      input.Record,
		Report:      input.Report,
	}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO parse_results (filename, content_hash, record, report, total_score, grade)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		input.Filename, input.ContentHash, recordJSON, reportJSON, totalScore, grade,
	).Scan(&result.ID, &result.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save result: %w", err)
	}
	return result, nil
}

// GetResult retrieves a stored result by ID
func (db *DB) GetResult(ctx context.Context, id uuid.UUID) (*Result, error) {
	var result Result
	var recordJSON, reportJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, filename, content_hash, record, report, created_at
		 FROM parse_results WHERE id = $1`,
		id,
	).Scan(&result.ID, &result.Filename, &result.ContentHash, &recordJSON, &reportJSON, &result.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	if err := decodeResult(&result, recordJSON, reportJSON); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListResults retrieves result summaries, newest first
func (db *DB) ListResults(ctx context.Context, opts ListOptions) ([]ResultSummary, error) {
	opts = opts.normalize()

	rows, err := db.pool.Query(ctx,
		`SELECT id, filename, record->'contact'->>'name', total_score, grade, created_at
		 FROM parse_results ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	summaries := make([]ResultSummary, 0)
	for rows.Next() {
		var s ResultSummary
		if err := rows.Scan(&s.ID, &s.Filename, &s.Name, &s.TotalScore, &s.Grade, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	return summaries, nil
}

// ListFullResults retrieves complete results, newest first
func (db *DB) ListFullResults(ctx context.Context, opts ListOptions) ([]Result, error) {
	opts = opts.normalize()

	rows, err := db.pool.Query(ctx,
		`SELECT id, filename, content_hash, record, report, created_at
		 FROM parse_results ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	results := make([]Result, 0)
	for rows.Next() {
		var result Result
		var recordJSON, reportJSON []byte
		if err := rows.Scan(&result.ID, &result.Filename, &result.ContentHash, &recordJSON, &reportJSON, &result.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		if err := decodeResult(&result, recordJSON, reportJSON); err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	return results, nil
}

// DeleteResult deletes a stored result
func (db *DB) DeleteResult(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM parse_results WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete result: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func encodeResult(input *ResultInput) (recordJSON, reportJSON []byte, err error) {
	recordJSON, err = json.Marshal(input.Record)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	if input.Report != nil {
		reportJSON, err = json.Marshal(input.Report)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal report: %w", err)
		}
	}
	return recordJSON, reportJSON, nil
}

func decodeResult(result *Result, recordJSON, reportJSON []byte) error {
	result.Record = types.NewParsedResume()
	if err := json.Unmarshal(recordJSON, result.Record); err != nil {
		return fmt.Errorf("failed to unmarshal record %s: %w", result.ID, err)
	}
	result.Record.FillDefaults()

	if len(reportJSON) > 0 {
		result.Report = &types.ScoreReport{}
		if err := json.Unmarshal(reportJSON, result.Report); err != nil {
			return fmt.Errorf("failed to unmarshal report %s: %w", result.ID, err)
		}
	}
	return nil
}
