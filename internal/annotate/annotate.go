// Package annotate provides the linguistic annotation capability used by the
// extraction engine: entity spans tagged person, place or language, plus
// token boundaries for phrase matching.
package annotate

import "context"

// Category is the coarse entity class assigned by an annotator
type Category string

// Entity categories understood by the extraction engine
const (
	CategoryPerson   Category = "person"
	CategoryPlace    Category = "place"
	CategoryLanguage Category = "language"
)

// Entity is a tagged span of the annotated text. Start and End are byte offsets.
type Entity struct {
	Category Category `json:"category"`
	Start    int      `json:"start"`
	End      int      `json:"end"`
	Text     string   `json:"text"`
}

// Token is a single token with byte offsets into the annotated text
type Token struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Annotation is the result of annotating one text
type Annotation struct {
	Entities []Entity `json:"entities"`
	Tokens   []Token  `json:"tokens,omitempty"`
}

// Annotator tags entities in text. Implementations must be safe for concurrent use.
type Annotator interface {
	Annotate(ctx context.Context, text string) (*Annotation, error)
}

// Filter returns the entities of the given category in document order
func (a *Annotation) Filter(category Category) []Entity {
	if a == nil {
		return nil
	}
	out := make([]Entity, 0)
	for _, e := range a.Entities {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// Static is an Annotator returning canned entities, used by tests and by
// callers that already hold annotations from elsewhere.
type Static struct {
	Entities []Entity
}

// Annotate returns the canned entities and a fresh tokenization of text
func (s Static) Annotate(_ context.Context, text string) (*Annotation, error) {
	entities := make([]Entity, len(s.Entities))
	copy(entities, s.Entities)
	return &Annotation{Entities: entities, Tokens: Tokenize(text)}, nil
}

// Nop is an Annotator that never finds entities
type Nop struct{}

// Annotate returns only the tokenization of text
func (Nop) Annotate(_ context.Context, text string) (*Annotation, error) {
	return &Annotation{Entities: []Entity{}, Tokens: Tokenize(text)}, nil
}
