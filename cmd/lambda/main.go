// Command lambda serves the recipe endpoint as an AWS Lambda function behind
// an API Gateway proxy integration.
package main

import (
	"log"
	"net/http"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"github.com/pageza/pantry-chef/backend/config"
	"github.com/pageza/pantry-chef/backend/internal/api"
	"github.com/pageza/pantry-chef/backend/internal/lambda"
	"github.com/pageza/pantry-chef/backend/internal/logging"
	"github.com/pageza/pantry-chef/backend/internal/service"
)

// overridden during build with ldflags
var version = "dev"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.SetDefault("pantry-chef-lambda", version, cfg.LogLevel)
	if !cfg.HasAPIKey() {
		logger.Warn("GEMINI_API_KEY is not set; recipe requests will fail with a configuration error")
	}

	gemini := service.NewGeminiService(&http.Client{}, cfg.GeminiAPIKey, cfg.GeminiAPIURL, cfg.GeminiModel, logger)
	recipes := api.NewRecipeHandler(service.NewRecipeService(gemini, logger), logger)

	awslambda.Start(lambda.NewHandler(recipes).Handle)
}
