// Package llm provides the Gemini client used for mentor chat and
// business-plan generation, with model tiers per task complexity.
package llm

// ModelTier represents the capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: short replies, classification
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: mentor conversation
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex structured output: business plans
	TierAdvanced ModelTier = "advanced"
)

// Config maps model tiers to Gemini model names
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default tier-to-model mapping
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a given tier, falling back through
// standard and lite when the tier is unconfigured
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

// WithModel returns a copy of the config with one tier overridden
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	out := &Config{Models: make(map[ModelTier]string, len(c.Models))}
	for k, v := range c.Models {
		out.Models[k] = v
	}
	out.Models[tier] = model
	return out
}
