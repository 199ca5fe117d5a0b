package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/db"
	"github.com/jonathan/resume-parser/internal/server"
	"github.com/jonathan/resume-parser/internal/server/ratelimit"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: "Start an HTTP server that parses uploaded resumes and scores records. " +
		"When a database URL is configured, results are stored and can be listed and exported.",
	Args: cobra.NoArgs,
	RunE: runServe,
}

var servePort int

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	parser, cleanup, err := buildParser(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	opts := server.Options{
		Config:  cfg,
		Parser:  parser,
		Logger:  log,
		Limiter: ratelimit.NewLimiter(limiterConfig(cfg.RateLimit)),
	}

	if cfg.DatabaseURL != "" {
		database, err := connectStore(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return err
		}
		defer database.Close()
		opts.Store = database
	} else {
		log.Info("no database configured; results will not be stored")
	}

	return server.New(opts).Start(ctx)
}

// connectStore connects to Postgres and applies pending migrations
func connectStore(ctx context.Context, databaseURL string, log *zap.Logger) (*db.DB, error) {
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	applied, err := database.Migrate(ctx)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Info("database ready", zap.Int("migrations_applied", applied))
	return database, nil
}

// limiterConfig converts the service rate limit settings
func limiterConfig(rl config.RateLimitConfig) *ratelimit.Config {
	cfg := ratelimit.DefaultConfig()
	cfg.Enabled = rl.Enabled
	cfg.DefaultLimit = rl.DefaultLimit
	cfg.DefaultWindow = rl.DefaultWindow
	cfg.CleanupInterval = rl.CleanupInterval
	cfg.Whitelist = ratelimit.ParseIPList(rl.Whitelist)
	cfg.Blacklist = ratelimit.ParseIPList(rl.Blacklist)
	return cfg
}
