package main

import (
	"os"
	"testing"

	"github.com/joho/godotenv"
)

// TestMain runs before all tests and loads .env if available
func TestMain(m *testing.M) {
	// Try to load .env file - ignore error if it doesn't exist (CI environment)
	_ = godotenv.Load()

	// Commands under test never need a database or a model
	_ = os.Unsetenv("DATABASE_URL")
	_ = os.Setenv("RESUME_PARSER_ANNOTATOR", "heuristic")

	os.Exit(m.Run())
}
