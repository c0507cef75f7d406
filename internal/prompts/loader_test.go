package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_MentorSystemPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("mentor.json", "system")
	require.NoError(t, err)
	assert.Contains(t, prompt, "career mentor")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("mentor.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestFormat(t *testing.T) {
	template := "Title: {{.Title}}, Market: {{.Market}}"
	result := Format(template, map[string]string{
		"Title":  "MealPlanr",
		"Market": "busy professionals",
	})
	assert.Equal(t, "Title: MealPlanr, Market: busy professionals", result)
}

func TestFormat_MissingKeyLeavesPlaceholder(t *testing.T) {
	template := "Hello {{.Name}}"
	assert.Equal(t, template, Format(template, map[string]string{}))
}

func TestBusinessPlanPromptPlaceholders(t *testing.T) {
	ClearCache()

	prompt, err := Get("startup.json", "business-plan")
	require.NoError(t, err)
	for _, placeholder := range []string{"{{.Title}}", "{{.Category}}", "{{.Market}}", "{{.Description}}"} {
		assert.Contains(t, prompt, placeholder)
	}
}
