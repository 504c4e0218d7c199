package service

import (
	"context"
	"encoding/json"

	"github.com/pageza/pantry-chef/backend/internal/types"
)

// ContentGenerator turns a prompt into the model's raw text reply
type ContentGenerator interface {
	Configured() bool
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// RecipeGenerator produces the recipe JSON for a validated request
type RecipeGenerator interface {
	Configured() bool
	GenerateRecipes(ctx context.Context, req types.RecipeRequest) (json.RawMessage, error)
}
