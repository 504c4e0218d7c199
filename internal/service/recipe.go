package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/pageza/pantry-chef/backend/internal/types"
)

// RecipeService builds recipe prompts and normalizes the model reply
type RecipeService struct {
	generator ContentGenerator
	logger    *slog.Logger
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(generator ContentGenerator, logger *slog.Logger) *RecipeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecipeService{
		generator: generator,
		logger:    logger,
	}
}

// Configured reports whether the underlying generator can be called
func (s *RecipeService) Configured() bool {
	return s.generator != nil && s.generator.Configured()
}

// GenerateRecipes asks the model for recipes and returns the cleaned JSON
// exactly as the model produced it. req must already be validated.
func (s *RecipeService) GenerateRecipes(ctx context.Context, req types.RecipeRequest) (json.RawMessage, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}

	prompt := BuildRecipePrompt(req.Ingredients, req.Lang)

	text, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	recipes, err := ValidateRecipeJSON(CleanModelOutput(text))
	if err != nil {
		s.logger.WarnContext(ctx, "model output violated the JSON contract",
			"lang", req.Lang,
			"output_bytes", len(text),
			"error", err,
		)
		return nil, err
	}

	return recipes, nil
}
