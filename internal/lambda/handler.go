// Package lambda serves the recipe handler behind AWS API Gateway proxy
// integrations.
package lambda

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/pageza/pantry-chef/backend/internal/api"
	"github.com/pageza/pantry-chef/backend/internal/middleware"
)

// Handler translates API Gateway proxy events for an api.RecipeHandler
type Handler struct {
	recipes *api.RecipeHandler
}

// NewHandler creates a new Handler instance
func NewHandler(recipes *api.RecipeHandler) *Handler {
	return &Handler{recipes: recipes}
}

// Handle is the function passed to lambda.Start
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var body io.Reader = strings.NewReader(event.Body)
	if event.IsBase64Encoded {
		body = base64.NewDecoder(base64.StdEncoding, strings.NewReader(event.Body))
	}

	method := event.HTTPMethod
	if method == "" {
		method = http.MethodGet
	}

	resp := h.recipes.Handle(ctx, api.Request{
		Method: strings.ToUpper(method),
		Body:   body,
	})

	headers := resp.Headers
	if headers == nil {
		headers = make(map[string]string, len(middleware.CORSHeaders))
	}
	if id := event.RequestContext.RequestID; id != "" {
		headers[middleware.RequestIDHeader] = id
	}

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Body:       string(resp.Body),
	}, nil
}
