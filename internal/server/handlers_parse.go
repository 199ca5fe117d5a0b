package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-parser/internal/db"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/logger"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/types"
)

// multipartOverhead allows for form boundaries and headers around the file
const multipartOverhead = 1 << 20

// Messages returned in ParseResponse.Error
const (
	msgNoFile     = "No file provided"
	msgNoFilename = "No filename provided"
	msgNoText     = "No text provided"
)

// handleParseFile parses an uploaded resume document
func (s *Server) handleParseFile(w http.ResponseWriter, r *http.Request) {
	includeRaw, wantScore, err := s.parseFlags(r)
	if err != nil {
		s.parseFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxFileSize+multipartOverhead)
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.parseFailure(w, http.StatusRequestEntityTooLarge, s.fileTooLargeMessage())
			return
		}
		s.parseFailure(w, http.StatusBadRequest, msgNoFile)
		return
	}
	defer file.Close()

	filename := filepath.Base(header.Filename)
	if header.Filename == "" || filename == "." || filename == "/" {
		s.parseFailure(w, http.StatusBadRequest, msgNoFilename)
		return
	}
	if !s.cfg.AllowsExtension(filepath.Ext(filename)) {
		s.parseFailure(w, http.StatusBadRequest, fmt.Sprintf(
			"Invalid file type. Allowed types: %s", strings.Join(s.cfg.AllowedExtensions, ", ")))
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxFileSize+1))
	if err != nil {
		s.parseFailure(w, http.StatusBadRequest, "Failed to read file: "+err.Error())
		return
	}
	if int64(len(data)) > s.cfg.MaxFileSize {
		s.parseFailure(w, http.StatusBadRequest, s.fileTooLargeMessage())
		return
	}

	log := logger.WithFields(s.requestLogger(r), zap.String(logger.FieldFile, filename))
	text, format, err := ingestion.ExtractText(filename, data)
	if err != nil {
		var unsupported *ingestion.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			s.parseFailure(w, http.StatusBadRequest, err.Error())
			return
		}
		// reported in the body with status 200
		log.Info("text extraction failed", zap.Error(err))
		s.parseFailure(w, http.StatusOK, extractionMessage(err))
		return
	}
	log.Debug("extracted text",
		zap.String(logger.FieldFormat, string(format)),
		zap.String("preview", logger.TruncateForLog(text, 80)),
	)

	s.respondParsed(w, r, filename, data, text, includeRaw, wantScore)
}

// handleParseText parses resume text posted as JSON
func (s *Server) handleParseText(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxFileSize)

	var req types.ParseTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.parseFailure(w, http.StatusRequestEntityTooLarge, s.fileTooLargeMessage())
			return
		}
		s.parseFailure(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil || strings.TrimSpace(req.Text) == "" {
		s.parseFailure(w, http.StatusOK, msgNoText)
		return
	}

	includeRaw := req.IncludeRawText || s.cfg.IncludeRawText
	s.respondParsed(w, r, "", []byte(req.Text), req.Text, includeRaw, req.Score)
}

// handleScore scores a record posted as JSON
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxFileSize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	var record types.ParsedResume
	if err := dec.Decode(&record); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, r, &ErrPayloadTooLarge{Limit: tooLarge.Limit})
			return
		}
		s.writeError(w, r, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}
	record.FillDefaults()

	if err := schemas.Validate(schemas.ParsedResume, &record); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, scoring.Score(&record))
}

// respondParsed runs extraction and scoring, stores the result when a store
// is configured, and writes the ParseResponse
func (s *Server) respondParsed(w http.ResponseWriter, r *http.Request, filename string, data []byte, text string, includeRaw, wantScore bool) {
	record, err := s.parser.Parse(r.Context(), text, includeRaw)
	if err != nil {
		s.requestLogger(r).Error("parse failed", zap.Error(err))
		s.parseFailure(w, http.StatusInternalServerError, "Failed to parse resume: "+err.Error())
		return
	}
	report := scoring.Score(record)

	resp := types.ParseResponse{Success: true, Data: record}
	if wantScore {
		resp.Score = report
	}

	if s.store != nil {
		saved, err := s.store.SaveResult(r.Context(), &db.ResultInput{
			Filename:    filename,
			ContentHash: ingestion.ComputeHash(data),
			Record:      record,
			Report:      report,
		})
		if err != nil {
			s.requestLogger(r).Warn("failed to save parse result", zap.Error(err))
		} else {
			resp.ID = saved.ID.String()
			s.requestLogger(r).Debug("saved parse result", zap.String(logger.FieldResultID, resp.ID))
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// parseFlags reads the include_raw_text and score query parameters
func (s *Server) parseFlags(r *http.Request) (includeRaw, wantScore bool, err error) {
	q := r.URL.Query()
	includeRaw = s.cfg.IncludeRawText
	if v := q.Get("include_raw_text"); v != "" {
		if includeRaw, err = strconv.ParseBool(v); err != nil {
			return false, false, fmt.Errorf("invalid include_raw_text value %q", v)
		}
	}
	if v := q.Get("score"); v != "" {
		if wantScore, err = strconv.ParseBool(v); err != nil {
			return false, false, fmt.Errorf("invalid score value %q", v)
		}
	}
	return includeRaw, wantScore, nil
}

func (s *Server) parseFailure(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, types.ParseResponse{Success: false, Error: message})
}

func (s *Server) fileTooLargeMessage() string {
	return fmt.Sprintf("File too large. Maximum size: %dMB", max(s.cfg.MaxFileSize>>20, 1))
}

// extractionMessage words an extraction failure for API clients
func extractionMessage(err error) string {
	if errors.Is(err, ingestion.ErrNoText) {
		return "Could not extract text from the document. The file may be image-based or corrupted."
	}
	return "Could not extract text: " + err.Error()
}
