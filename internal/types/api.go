//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// ParseTextRequest is the body of POST /api/v1/parse/text
type ParseTextRequest struct {
	Text           string `json:"text" validate:"required"`
	IncludeRawText bool   `json:"include_raw_text,omitempty"`
	Score          bool   `json:"score,omitempty"`
}

// ParseResponse wraps a parse result for API clients
type ParseResponse struct {
	Success bool          `json:"success"`
	ID      string        `json:"id,omitempty"`
	Data    *ParsedResume `json:"data,omitempty"`
	Score   *ScoreReport  `json:"score,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// IndexResponse is returned by GET /
type IndexResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Health  string `json:"health"`
}

// ErrorResponse is the body of a failed non-parse request
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// Validate validates the ParseTextRequest using the validator.
func (r *ParseTextRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
