package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetModelFallback(t *testing.T) {
	cfg := &Config{Models: map[ModelTier]string{
		TierStandard: "gemini-2.5-flash",
	}}

	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierAdvanced), "unconfigured tier falls back to standard")

	empty := &Config{Models: map[ModelTier]string{}}
	assert.Equal(t, "", empty.GetModel(TierAdvanced))
}

func TestWithModelDoesNotMutate(t *testing.T) {
	base := DefaultConfig()
	derived := base.WithModel(TierAdvanced, "gemini-3.0-pro")

	assert.Equal(t, "gemini-3.0-pro", derived.GetModel(TierAdvanced))
	assert.Equal(t, "gemini-2.5-pro", base.GetModel(TierAdvanced))
}

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain json", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fence with language", "```javascript\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  {\"a\": 1}\n", `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}
