package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultServerPort   = "8080"
	defaultGeminiAPIURL = "https://generativelanguage.googleapis.com"
	defaultLogLevel     = "info"
	defaultSecretsDir   = "/run/secrets"
)

// DefaultModel is the Gemini model used when GEMINI_MODEL is not set.
// Overridden at build time with -ldflags "-X .../config.DefaultModel=...".
var DefaultModel = "gemini-2.0-flash"

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Gemini configuration
	GeminiAPIKey string
	GeminiAPIURL string
	GeminiModel  string

	LogLevel string
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{
		ServerPort:   getEnv("SERVER_PORT", defaultServerPort),
		ServerHost:   os.Getenv("SERVER_HOST"),
		GeminiAPIURL: strings.TrimRight(getEnv("GEMINI_API_URL", defaultGeminiAPIURL), "/"),
		GeminiModel:  getEnv("GEMINI_MODEL", DefaultModel),
		LogLevel:     getEnv("LOG_LEVEL", defaultLogLevel),
	}

	apiKey, err := loadAPIKey(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load Gemini API key: %w", err)
	}
	cfg.GeminiAPIKey = apiKey

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Address returns the host:port the HTTP server listens on
func (c *Config) Address() string {
	return c.ServerHost + ":" + c.ServerPort
}

// HasAPIKey reports whether the Gemini API key is configured
func (c *Config) HasAPIKey() bool {
	return c.GeminiAPIKey != ""
}

// loadAPIKey resolves the Gemini key from GEMINI_API_KEY, then
// GEMINI_API_KEY_FILE, then (in production) the gemini_api_key Docker secret.
// An absent key is not an error here; requests report it instead.
func loadAPIKey(env Environment) (string, error) {
	if key := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); key != "" {
		return key, nil
	}

	if keyFile := os.Getenv("GEMINI_API_KEY_FILE"); keyFile != "" {
		data, err := os.ReadFile(keyFile)
		if err != nil {
			return "", fmt.Errorf("failed to read API key file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	if env == Production {
		return readSecret("gemini_api_key"), nil
	}

	return "", nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = defaultSecretsDir
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
