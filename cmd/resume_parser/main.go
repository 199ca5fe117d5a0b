// Package main provides the command-line interface and HTTP server for the
// resume parser.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_parser",
	Short: "Smart Resume Parser",
	Long: "Smart Resume Parser turns PDF, DOCX, ODT, HTML and plain-text resumes into " +
		"structured records and scores their completeness, from the command line or over HTTP.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
