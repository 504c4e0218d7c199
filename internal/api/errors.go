package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/pageza/pantry-chef/backend/internal/service"
	"github.com/pageza/pantry-chef/backend/internal/types"
)

// Error categories reported in the "error" field
const (
	CategoryConfiguration    = "Configuration Error"
	CategoryMethodNotAllowed = "Method Not Allowed"
	CategoryInvalidBody      = "Invalid JSON body"
	CategoryMissingField     = "Missing required field"
	CategoryUpstream         = "Gemini API failed"
	CategoryProcessing       = "Processing Error"
)

// apiError is a terminal failure of the recipe pipeline
type apiError struct {
	status int
	body   types.ErrorResponse
}

func newAPIError(status int, category, message, details string) *apiError {
	return &apiError{
		status: status,
		body: types.ErrorResponse{
			Error:   category,
			Message: message,
			Details: details,
		},
	}
}

func (e *apiError) encode() []byte {
	data, err := json.Marshal(e.body)
	if err != nil {
		return []byte(`{"error":"` + CategoryProcessing + `","message":"failed to encode error"}`)
	}
	return data
}

// errorFromService converts a service failure into its HTTP form
func errorFromService(err error) *apiError {
	var upstream *service.UpstreamError
	switch {
	case errors.Is(err, service.ErrNotConfigured):
		return newAPIError(http.StatusInternalServerError, CategoryConfiguration,
			"The generation API key is not configured on the server", "")
	case errors.As(err, &upstream):
		if upstream.StatusCode == 0 {
			return newAPIError(http.StatusBadGateway, CategoryUpstream,
				"The generation API could not be reached", upstream.Message)
		}
		// 2xx replies carrying an error object map to 502
		status := upstream.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		return newAPIError(status, CategoryUpstream,
			fmt.Sprintf("The generation API request failed with status %d", upstream.StatusCode),
			upstream.Message)
	case errors.Is(err, service.ErrNoContent):
		return newAPIError(http.StatusInternalServerError, CategoryProcessing,
			"No content generated", "")
	case errors.Is(err, service.ErrInvalidModelOutput):
		return newAPIError(http.StatusInternalServerError, CategoryProcessing,
			"The model returned output that is not valid JSON", err.Error())
	case errors.Is(err, service.ErrMalformedUpstreamResponse):
		return newAPIError(http.StatusInternalServerError, CategoryProcessing,
			"Could not decode the generation API response", err.Error())
	default:
		return newAPIError(http.StatusInternalServerError, CategoryProcessing,
			"Failed to generate recipes", err.Error())
	}
}
