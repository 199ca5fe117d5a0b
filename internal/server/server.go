package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/db"
	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/server/ratelimit"
)

// Store persists parse results. *db.DB satisfies it.
type Store interface {
	SaveResult(ctx context.Context, input *db.ResultInput) (*db.Result, error)
	GetResult(ctx context.Context, id uuid.UUID) (*db.Result, error)
	ListResults(ctx context.Context, opts db.ListOptions) ([]db.ResultSummary, error)
	ListFullResults(ctx context.Context, opts db.ListOptions) ([]db.Result, error)
	DeleteResult(ctx context.Context, id uuid.UUID) error
}

// Options holds the server's collaborators. Store and Limiter may be nil.
type Options struct {
	Config  *config.Config
	Parser  *parsing.Parser
	Store   Store
	Limiter *ratelimit.Limiter
	Logger  *zap.Logger
}

// Server represents the HTTP server
type Server struct {
	cfg         *config.Config
	parser      *parsing.Parser
	store       Store
	rateLimiter *ratelimit.Limiter
	logger      *zap.Logger
	handler     http.Handler
	httpServer  *http.Server
}

// New creates a new server instance
func New(opts Options) *Server {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	parser := opts.Parser
	if parser == nil {
		parser = parsing.New(nil, opts.Logger)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		cfg:         cfg,
		parser:      parser,
		store:       opts.Store,
		rateLimiter: opts.Limiter,
		logger:      logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /api/v1/parse", s.handleParseFile)
	mux.HandleFunc("POST /api/v1/parse/text", s.handleParseText)
	mux.HandleFunc("POST /api/v1/score", s.handleScore)

	mux.HandleFunc("GET /api/v1/results", s.handleListResults)
	mux.HandleFunc("GET /api/v1/results/{id}", s.handleGetResult)
	mux.HandleFunc("DELETE /api/v1/results/{id}", s.handleDeleteResult)
	mux.HandleFunc("GET /api/v1/export", s.handleExport)

	s.handler = s.withRequestID(s.withRateLimit(s.withLogging(s.withCORS(mux))))
	s.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the routed handler with all middleware applied
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves until ctx is cancelled, then shuts down gracefully within
// the configured shutdown timeout
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			zap.String("addr", s.httpServer.Addr),
			zap.Bool("persistence", s.store != nil),
		)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}
