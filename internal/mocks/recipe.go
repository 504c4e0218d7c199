package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/pantry-chef/backend/internal/types"
)

// MockRecipeGenerator is a mock implementation of service.RecipeGenerator
type MockRecipeGenerator struct {
	mock.Mock
}

// Configured mocks the Configured method
func (m *MockRecipeGenerator) Configured() bool {
	return m.Called().Bool(0)
}

// GenerateRecipes mocks the GenerateRecipes method
func (m *MockRecipeGenerator) GenerateRecipes(ctx context.Context, req types.RecipeRequest) (json.RawMessage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// MockContentGenerator is a mock implementation of service.ContentGenerator
type MockContentGenerator struct {
	mock.Mock
}

// Configured mocks the Configured method
func (m *MockContentGenerator) Configured() bool {
	return m.Called().Bool(0)
}

// GenerateContent mocks the GenerateContent method
func (m *MockContentGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
