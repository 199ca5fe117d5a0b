package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-parser/internal/types"
)

// Result is a stored parse result
type Result struct {
	ID          uuid.UUID           `json:"id"`
	Filename    string              `json:"filename"`
	ContentHash string              `json:"content_hash"`
	Record      *types.ParsedResume `json:"record"`
	Report      *types.ScoreReport  `json:"report,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

// ResultInput holds the fields needed to store a parse result
type ResultInput struct {
	Filename    string
	ContentHash string
	Record      *types.ParsedResume
	Report      *types.ScoreReport
}

// ResultSummary is the list view of a stored result
type ResultSummary struct {
	ID         uuid.UUID `json:"id"`
	Filename   string    `json:"filename"`
	Name       *string   `json:"name"`
	TotalScore *int      `json:"total_score"`
	Grade      *string   `json:"grade"`
	CreatedAt  time.Time `json:"created_at"`
}

// ListOptions pages through stored results, newest first
type ListOptions struct {
	Limit  int
	Offset int
}

// DefaultListLimit and MaxListLimit bound ListOptions.Limit
const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// normalize applies the default and maximum page size
func (o ListOptions) normalize() ListOptions {
	if o.Limit <= 0 {
		o.Limit = DefaultListLimit
	}
	if o.Limit > MaxListLimit {
		o.Limit = MaxListLimit
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
	return o
}
