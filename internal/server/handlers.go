package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/types"
)

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, types.HealthResponse{
		Status:  "healthy",
		Version: s.cfg.AppVersion,
	})
}

// handleIndex describes the service
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, types.IndexResponse{
		Name:    s.cfg.AppName,
		Version: s.cfg.AppVersion,
		Health:  "/health",
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, types.ErrorResponse{Error: message})
}

// writeError maps err to a status code and writes it. Schema violations
// list each failing field.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.requestLogger(r).Error("request failed", zap.Error(err))
	}

	resp := types.ErrorResponse{Error: err.Error()}
	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		resp.Error = "record does not match schema"
		for _, fe := range schemaErr.Errors {
			resp.Details = append(resp.Details, fe.Field+": "+fe.Message)
		}
	}
	s.jsonResponse(w, status, resp)
}
