package annotate

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/jonathan/resume-parser/internal/llm"
)

// Gemini annotates text by asking a hosted model for entity spans and
// locating them in the source. Spans the model invents are dropped.
type Gemini struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewGemini wraps an llm client as an Annotator
func NewGemini(client llm.Client) *Gemini {
	return &Gemini{client: client, tier: llm.TierStandard}
}

type entityResponse struct {
	Persons   []string `json:"persons"`
	Places    []string `json:"places"`
	Languages []string `json:"languages"`
}

// Annotate implements Annotator
func (g *Gemini) Annotate(ctx context.Context, text string) (*Annotation, error) {
	ann := &Annotation{Entities: make([]Entity, 0), Tokens: Tokenize(text)}
	if strings.TrimSpace(text) == "" {
		return ann, nil
	}

	raw, err := g.client.GenerateJSON(ctx, llm.BuildExtractionPrompt(llm.EntitySchema(), text), g.tier)
	if err != nil {
		return nil, &AnnotationError{Backend: "gemini", Message: "generation failed", Cause: err}
	}

	var resp entityResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, &AnnotationError{Backend: "gemini", Message: "invalid entity JSON", Cause: err}
	}

	ann.Entities = append(ann.Entities, locate(text, CategoryPerson, resp.Persons)...)
	ann.Entities = append(ann.Entities, locate(text, CategoryPlace, resp.Places)...)
	ann.Entities = append(ann.Entities, locate(text, CategoryLanguage, resp.Languages)...)
	sort.SliceStable(ann.Entities, func(i, j int) bool { return ann.Entities[i].Start < ann.Entities[j].Start })

	return ann, nil
}

// locate finds each name in text, searching forward from the previous hit
// of the same category so repeated names map to distinct spans.
func locate(text string, category Category, names []string) []Entity {
	var out []Entity
	cursor := 0
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		idx := strings.Index(text[cursor:], name)
		if idx < 0 {
			// the model may list spans out of order
			idx = strings.Index(text, name)
			if idx < 0 {
				continue
			}
		} else {
			idx += cursor
		}
		out = append(out, Entity{Category: category, Start: idx, End: idx + len(name), Text: name})
		cursor = idx + len(name)
	}
	return out
}
