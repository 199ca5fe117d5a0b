package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-parser/internal/db"
	"github.com/jonathan/resume-parser/internal/export"
	"github.com/jonathan/resume-parser/internal/logger"
	"github.com/jonathan/resume-parser/internal/scoring"
)

// ResultsResponse is returned by GET /api/v1/results
type ResultsResponse struct {
	Results []db.ResultSummary `json:"results"`
	Count   int                `json:"count"`
	Limit   int                `json:"limit"`
	Offset  int                `json:"offset"`
}

// handleListResults lists stored results, newest first
func (s *Server) handleListResults(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, r, &ErrStoreUnavailable{})
		return
	}

	opts, err := listOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	results, err := s.store.ListResults(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("failed to list results: %w", err))
		return
	}
	if results == nil {
		results = []db.ResultSummary{}
	}

	s.jsonResponse(w, http.StatusOK, ResultsResponse{
		Results: results,
		Count:   len(results),
		Limit:   opts.Limit,
		Offset:  opts.Offset,
	})
}

// handleGetResult returns one stored result
func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, r, &ErrStoreUnavailable{})
		return
	}

	id, err := resultID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.store.GetResult(r.Context(), id)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("failed to get result: %w", err))
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleDeleteResult removes one stored result
func (s *Server) handleDeleteResult(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, r, &ErrStoreUnavailable{})
		return
	}

	id, err := resultID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.store.DeleteResult(r.Context(), id); err != nil {
		s.writeError(w, r, fmt.Errorf("failed to delete result: %w", err))
		return
	}
	s.requestLogger(r).Info("deleted result", zap.String(logger.FieldResultID, id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// handleExport ranks stored results and returns them as a download
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, r, &ErrStoreUnavailable{})
		return
	}

	name := r.URL.Query().Get("format")
	if name == "" {
		name = string(export.FormatJSON)
	}
	format, err := export.ParseFormat(name)
	if err != nil {
		s.writeError(w, r, &ErrValidation{Field: "format", Message: err.Error()})
		return
	}

	opts, err := listOptions(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if r.URL.Query().Get("limit") == "" {
		opts.Limit = db.MaxListLimit
	}

	results, err := s.store.ListFullResults(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("failed to load results: %w", err))
		return
	}

	entries := make([]scoring.Entry, 0, len(results))
	for _, res := range results {
		label := res.Filename
		if label == "" {
			label = res.ID.String()
		}
		entries = append(entries, scoring.Entry{Label: label, Record: res.Record, Report: res.Report})
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, entries); err != nil {
		s.writeError(w, r, fmt.Errorf("failed to export results: %w", err))
		return
	}

	w.Header().Set("Content-Type", export.ContentTypes[format])
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="resumes.%s"`, format))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.requestLogger(r).Warn("failed to write export", zap.Error(err))
	}
}

// resultID parses the {id} path value
func resultID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "invalid result ID format"}
	}
	return id, nil
}

// listOptions reads the limit and offset query parameters
func listOptions(r *http.Request) (db.ListOptions, error) {
	var opts db.ListOptions
	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return opts, &ErrValidation{Field: "limit", Message: "must be a non-negative integer"}
		}
		opts.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return opts, &ErrValidation{Field: "offset", Message: "must be a non-negative integer"}
		}
		opts.Offset = n
	}
	if opts.Limit == 0 {
		opts.Limit = db.DefaultListLimit
	}
	opts.Limit = min(opts.Limit, db.MaxListLimit)
	return opts, nil
}
