package llm

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-parser/internal/prompts"
)

// ExtractionSchema describes the JSON object a prompt asks the model to return
type ExtractionSchema struct {
	Name        string
	Description string
	Fields      []SchemaField
}

// SchemaField is one key of the expected JSON object
type SchemaField struct {
	Name        string
	Type        string
	Description string
	Required    bool
}

// BuildExtractionPrompt renders schema as instructions followed by the input text
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "\"string\""
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString(prompts.MustGet(prompts.Annotation, prompts.KeyExtractionRules))
	sb.WriteString("\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// EntitySchema asks for the named entities used by resume extraction
func EntitySchema() ExtractionSchema {
	return ExtractionSchema{
		Name:        "ResumeEntities",
		Description: prompts.MustGet(prompts.Annotation, prompts.KeyEntityTagger),
		Fields: []SchemaField{
			{Name: "persons", Type: "[\"string\"]", Description: "full names of people, in order of appearance", Required: true},
			{Name: "places", Type: "[\"string\"]", Description: "cities, states, regions and countries, in order of appearance", Required: true},
			{Name: "languages", Type: "[\"string\"]", Description: "spoken or written human languages, not programming languages", Required: true},
		},
	}
}
