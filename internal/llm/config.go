// Package llm wraps the hosted language model used for optional entity
// annotation of resume text.
package llm

// ModelTier selects a model by cost and capability
type ModelTier string

const (
	// TierLite is for short classification and tagging prompts
	TierLite ModelTier = "lite"
	// TierStandard is for structured extraction over a whole document
	TierStandard ModelTier = "standard"
)

// DefaultModel is the Gemini model used when none is configured
const DefaultModel = "gemini-2.5-flash"

// Config maps tiers to concrete model names
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the Gemini model table
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: DefaultModel,
		},
	}
}

// GetModel returns the model for a tier, falling back to standard then lite
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the config with tier pinned to model.
// An empty model leaves the table unchanged.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	next := &Config{Models: make(map[ModelTier]string, len(c.Models)+1)}
	for k, v := range c.Models {
		next.Models[k] = v
	}
	if model != "" {
		next.Models[tier] = model
	}
	return next
}
