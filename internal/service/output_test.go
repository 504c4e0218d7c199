package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanModelOutput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare", in: `[{"title":"X"}]`, want: `[{"title":"X"}]`},
		{name: "json fence", in: "```json\n[{\"title\":\"X\"}]\n```", want: `[{"title":"X"}]`},
		{name: "plain fence", in: "```\n[1,2]\n```", want: `[1,2]`},
		{name: "surrounding whitespace", in: "\n\t  ```json [] ```  \n", want: `[]`},
		{name: "no closing fence", in: "```json\n[]", want: `[]`},
		{name: "uppercase tag is kept", in: "```JSON\n[]\n```", want: "JSON\n[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanModelOutput(tt.in))
		})
	}
}

func TestValidateRecipeJSON(t *testing.T) {
	t.Run("should return valid json unchanged", func(t *testing.T) {
		raw, err := ValidateRecipeJSON(`[{"title":"X","steps":["a"]}]`)
		require.NoError(t, err)
		assert.Equal(t, `[{"title":"X","steps":["a"]}]`, string(raw))
	})

	t.Run("should reject prose", func(t *testing.T) {
		_, err := ValidateRecipeJSON("not json")
		assert.ErrorIs(t, err, ErrInvalidModelOutput)
	})

	t.Run("should reject empty output", func(t *testing.T) {
		_, err := ValidateRecipeJSON("")
		assert.ErrorIs(t, err, ErrInvalidModelOutput)
	})

	t.Run("should reject an unknown fence variant", func(t *testing.T) {
		_, err := ValidateRecipeJSON(CleanModelOutput("```JSON\n[]\n```"))
		assert.ErrorIs(t, err, ErrInvalidModelOutput)
	})
}
