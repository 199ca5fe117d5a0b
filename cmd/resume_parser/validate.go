package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.json>",
	Short: "Validate a JSON file against a schema",
	Long: fmt.Sprintf("Validate a JSON file against a built-in schema (%s) or a schema file path.",
		strings.Join(schemas.Names(), ", ")),
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

var validateSchema string

func init() {
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", schemas.ParsedResume, "Schema name or path to a schema file")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	err := schemas.ValidateJSON(validateSchema, args[0])
	if err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is valid against %s\n", args[0], validateSchema)
		return nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		fmt.Fprint(cmd.ErrOrStderr(), validationErr.Error())
		return fmt.Errorf("%s is not valid against %s (%d errors)", args[0], validateSchema, len(validationErr.Errors))
	}
	return err
}
