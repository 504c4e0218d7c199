package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildRecipePrompt(t *testing.T) {
	prompt := BuildRecipePrompt(`tomato, "feta", eggs`, "fr")

	assert.Contains(t, prompt, "expert chef")
	assert.Contains(t, prompt, "exactly 2 recipes")
	assert.Contains(t, prompt, `tomato, "feta", eggs`)
	assert.Contains(t, prompt, `language with the code "fr"`)
	assert.Contains(t, prompt, "ONLY a JSON array")
	for _, field := range []string{`"title"`, `"desc"`, `"time"`, `"ingredients"`, `"steps"`} {
		assert.Contains(t, prompt, field)
	}
}

func TestBuildRecipePromptIsDeterministic(t *testing.T) {
	assert.Equal(t, BuildRecipePrompt("rice", "ar"), BuildRecipePrompt("rice", "ar"))
}
