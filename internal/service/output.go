package service

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	jsonFence = "```json"
	fence     = "```"
)

// CleanModelOutput strips one surrounding markdown code fence ("```json" or
// "```") and surrounding whitespace. Other fence variants are left in place.
func CleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, jsonFence) {
		cleaned = strings.TrimPrefix(cleaned, jsonFence)
	} else {
		cleaned = strings.TrimPrefix(cleaned, fence)
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), fence)
	return strings.TrimSpace(cleaned)
}

// ValidateRecipeJSON checks that cleaned model output is JSON and returns it unchanged
func ValidateRecipeJSON(cleaned string) (json.RawMessage, error) {
	if !json.Valid([]byte(cleaned)) {
		var probe any
		err := json.Unmarshal([]byte(cleaned), &probe)
		return nil, fmt.Errorf("%w: %v", ErrInvalidModelOutput, err)
	}
	return json.RawMessage(cleaned), nil
}
