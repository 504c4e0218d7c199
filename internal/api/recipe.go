package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pageza/pantry-chef/backend/internal/metrics"
	"github.com/pageza/pantry-chef/backend/internal/middleware"
	"github.com/pageza/pantry-chef/backend/internal/service"
	"github.com/pageza/pantry-chef/backend/internal/types"
)

// RecipesPath is where the recipe endpoint is served
const RecipesPath = "/api/generate-recipes"

const maxBodyBytes = 1 << 20

// RecipeHandler handles recipe generation requests
type RecipeHandler struct {
	recipes service.RecipeGenerator
	logger  *slog.Logger
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(recipes service.RecipeGenerator, logger *slog.Logger) *RecipeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecipeHandler{
		recipes: recipes,
		logger:  logger,
	}
}

// RegisterRoutes registers the recipe route for every method; method
// checks happen inside the handler
func (h *RecipeHandler) RegisterRoutes(router gin.IRoutes) {
	router.Any(RecipesPath, h.Generate)
}

// Generate adapts Handle to gin
func (h *RecipeHandler) Generate(c *gin.Context) {
	resp := h.Handle(c.Request.Context(), Request{
		Method: c.Request.Method,
		Body:   c.Request.Body,
	})

	for k, v := range resp.Headers {
		c.Header(k, v)
	}
	c.Data(resp.StatusCode, "application/json", resp.Body)
}

// Handle runs one request through the recipe pipeline. Every path returns a
// complete response carrying the CORS headers.
func (h *RecipeHandler) Handle(ctx context.Context, req Request) Response {
	if req.Method == http.MethodOptions {
		return respond(http.StatusOK, nil)
	}

	if h.recipes == nil || !h.recipes.Configured() {
		h.logger.ErrorContext(ctx, "recipe request rejected: generation API key is not configured")
		return h.fail(errorFromService(service.ErrNotConfigured))
	}

	if req.Method != http.MethodPost {
		return h.fail(newAPIError(http.StatusMethodNotAllowed, CategoryMethodNotAllowed,
			fmt.Sprintf("Method %s is not allowed, use POST", req.Method), ""))
	}

	recipeReq, apiErr := parseRecipeRequest(req.Body)
	if apiErr != nil {
		return h.fail(apiErr)
	}

	recipes, err := h.recipes.GenerateRecipes(ctx, recipeReq)
	if err != nil {
		apiErr := errorFromService(err)
		if apiErr.status >= http.StatusInternalServerError {
			h.logger.ErrorContext(ctx, "recipe generation failed",
				"category", apiErr.body.Error,
				"status", apiErr.status,
				"error", err,
			)
		}
		return h.fail(apiErr)
	}

	metrics.RecipeRequests.WithLabelValues("success").Inc()
	return respond(http.StatusOK, recipes)
}

func (h *RecipeHandler) fail(e *apiError) Response {
	metrics.RecipeRequests.WithLabelValues(e.body.Error).Inc()
	return respond(e.status, e.encode())
}

func respond(status int, body []byte) Response {
	headers := make(map[string]string, len(middleware.CORSHeaders)+1)
	for k, v := range middleware.CORSHeaders {
		headers[k] = v
	}
	headers["Content-Type"] = "application/json"
	return Response{StatusCode: status, Headers: headers, Body: body}
}

// parseRecipeRequest decodes the body. Fields with the wrong JSON type are
// treated as absent; lang falls back to types.DefaultLang.
func parseRecipeRequest(body io.Reader) (types.RecipeRequest, *apiError) {
	var req types.RecipeRequest
	if body == nil {
		body = http.NoBody
	}

	data, err := io.ReadAll(io.LimitReader(body, maxBodyBytes+1))
	if err != nil {
		return req, newAPIError(http.StatusBadRequest, CategoryInvalidBody, "Could not read request body", err.Error())
	}
	if len(data) > maxBodyBytes {
		return req, newAPIError(http.StatusBadRequest, CategoryInvalidBody, "Request body is too large", "")
	}

	if err := json.Unmarshal(data, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return types.RecipeRequest{}, newAPIError(http.StatusBadRequest, CategoryInvalidBody,
				"Request body must be valid JSON", err.Error())
		}
	}

	if strings.TrimSpace(req.Ingredients) == "" {
		return types.RecipeRequest{}, newAPIError(http.StatusBadRequest, CategoryMissingField,
			"ingredients is required and must be a non-empty string", "")
	}
	if req.Lang == "" {
		req.Lang = types.DefaultLang
	}

	return req, nil
}
