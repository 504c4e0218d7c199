package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// ValidateConfig checks that the loaded values are usable. The API key is not
// checked here; a missing key is reported per request.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		errors = append(errors, ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)}.Error())
	}

	if u, err := url.Parse(cfg.GeminiAPIURL); err != nil || u.Scheme == "" || u.Host == "" {
		errors = append(errors, ValidationError{Field: "GEMINI_API_URL", Message: fmt.Sprintf("invalid URL %q", cfg.GeminiAPIURL)}.Error())
	}

	if cfg.GeminiModel == "" || strings.ContainsAny(cfg.GeminiModel, "/?#: ") {
		errors = append(errors, ValidationError{Field: "GEMINI_MODEL", Message: fmt.Sprintf("invalid model name %q", cfg.GeminiModel)}.Error())
	}

	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		errors = append(errors, ValidationError{Field: "LOG_LEVEL", Message: fmt.Sprintf("unknown level %q", cfg.LogLevel)}.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
