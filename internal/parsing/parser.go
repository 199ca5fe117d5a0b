// Package parsing turns plain resume text into a structured record. Text is
// split into sections by header lines and each field is filled by its own
// best-effort rule, so no input makes extraction fail.
package parsing

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-parser/internal/annotate"
	"github.com/jonathan/resume-parser/internal/types"
)

// Extract builds a record from text and a precomputed annotation. A nil
// annotation is treated as one with no entities.
func Extract(text string, ann *annotate.Annotation) *types.ParsedResume {
	record := types.NewParsedResume()
	if strings.TrimSpace(text) == "" {
		return record
	}

	tokens := annotate.Tokenize(text)
	if ann != nil && len(ann.Tokens) > 0 && tokensMatch(text, ann.Tokens) {
		tokens = ann.Tokens
	}
	sections := Segment(text)

	record.Contact = ExtractContact(text, ann)
	record.Summary = ExtractSummary(sections)
	record.Skills = ExtractSkills(text, sections, tokens)
	record.Experience = ExtractExperience(sections)
	record.Education = ExtractEducation(text, sections)
	record.Certifications = ExtractCertifications(sections)
	record.Languages = ExtractLanguages(text, ann)
	return record
}

// tokensMatch reports whether every token lies within text and spells the
// text at its offsets. Tokens computed for another text fail the check.
func tokensMatch(text string, tokens []annotate.Token) bool {
	for _, t := range tokens {
		if t.Start < 0 || t.End < t.Start || t.End > len(text) || text[t.Start:t.End] != t.Text {
			return false
		}
	}
	return true
}

// Parser runs an annotator before extraction
type Parser struct {
	annotator annotate.Annotator
	logger    *zap.Logger
}

// New creates a Parser. A nil annotator disables entity tagging and a nil
// logger discards log output.
func New(annotator annotate.Annotator, logger *zap.Logger) *Parser {
	if annotator == nil {
		annotator = annotate.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{annotator: annotator, logger: logger}
}

// Parse annotates and extracts text. An annotator failure is logged and
// extraction continues without entities, so Parse only fails when ctx is done.
func (p *Parser) Parse(ctx context.Context, text string, includeRawText bool) (*types.ParsedResume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var ann *annotate.Annotation
	if strings.TrimSpace(text) != "" {
		var err error
		ann, err = p.annotator.Annotate(ctx, text)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			p.logger.Warn("annotation failed, continuing without entities", zap.Error(err))
			ann = nil
		}
	}

	record := Extract(text, ann)
	if includeRawText {
		record.RawText = types.StringPtr(text)
	}

	p.logger.Debug("parsed resume",
		zap.Int("chars", len(text)),
		zap.Int("skills", len(record.Skills)),
		zap.Int("experience", len(record.Experience)),
		zap.Int("education", len(record.Education)),
	)
	return record, nil
}
