package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pageza/pantry-chef/backend/internal/metrics"
)

// Part is a single text fragment of a Gemini message
type Part struct {
	Text string `json:"text"`
}

// Content is one Gemini message
type Content struct {
	Parts []Part `json:"parts"`
}

// GenerationConfig carries output hints for the model
type GenerationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

// GenerateContentRequest is the body of a generateContent call
type GenerateContentRequest struct {
	Contents         []Content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

// Candidate is one generated answer
type Candidate struct {
	Content Content `json:"content"`
}

// APIError is the error object Gemini embeds in failed responses
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// GenerateContentResponse is the decoded reply of a generateContent call
type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates"`
	Error      *APIError   `json:"error,omitempty"`
}

// Text returns candidates[0].content.parts[0].text or ErrNoContent
func (r *GenerateContentResponse) Text() (string, error) {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return "", ErrNoContent
	}
	text := r.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", ErrNoContent
	}
	return text, nil
}

// GeminiService handles interactions with the Gemini generateContent API
type GeminiService struct {
	client  *http.Client
	apiKey  string
	baseURL string
	model   string
	logger  *slog.Logger
}

// NewGeminiService creates a new GeminiService instance
func NewGeminiService(client *http.Client, apiKey, baseURL, model string, logger *slog.Logger) *GeminiService {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GeminiService{
		client:  client,
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		logger:  logger,
	}
}

// Configured reports whether an API key is available
func (s *GeminiService) Configured() bool {
	return s.apiKey != ""
}

// endpoint builds the generateContent URL. The key travels as a query parameter.
func (s *GeminiService) endpoint() string {
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		s.baseURL, url.PathEscape(s.model), url.QueryEscape(s.apiKey))
}

// GenerateContent sends the prompt once and returns the generated text
func (s *GeminiService) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if !s.Configured() {
		return "", ErrNotConfigured
	}

	reqBody := GenerateContentRequest{
		Contents: []Content{
			{Parts: []Part{{Text: prompt}}},
		},
		GenerationConfig: GenerationConfig{
			ResponseMimeType: "application/json",
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint(), bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		metrics.ObserveGeneration("transport_error", start)
		// url.Error would echo the key-bearing URL
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		s.logger.ErrorContext(ctx, "generation API request failed", "model", s.model, "error", err)
		return "", &UpstreamError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ObserveGeneration("transport_error", start)
		return "", &UpstreamError{StatusCode: resp.StatusCode, Message: err.Error(), Err: err}
	}

	var decoded GenerateContentResponse
	decodeErr := json.Unmarshal(body, &decoded)

	if resp.StatusCode < 200 || resp.StatusCode > 299 || (decodeErr == nil && decoded.Error != nil) {
		metrics.ObserveGeneration("upstream_error", start)
		message := UnknownUpstreamError
		if decodeErr == nil && decoded.Error != nil && decoded.Error.Message != "" {
			message = decoded.Error.Message
		}
		s.logger.WarnContext(ctx, "generation API returned an error",
			"model", s.model,
			"status", resp.StatusCode,
			"message", message,
		)
		return "", &UpstreamError{StatusCode: resp.StatusCode, Message: message}
	}
	metrics.ObserveGeneration("ok", start)

	if decodeErr != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedUpstreamResponse, decodeErr)
	}

	s.logger.DebugContext(ctx, "generation API replied",
		"model", s.model,
		"candidates", len(decoded.Candidates),
		"latency_ms", time.Since(start).Milliseconds(),
	)

	return decoded.Text()
}
