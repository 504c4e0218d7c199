package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"

	"github.com/pageza/pantry-chef/backend/config"
	"github.com/pageza/pantry-chef/backend/internal/logging"
	"github.com/pageza/pantry-chef/backend/internal/server"
)

const name = "pantry-chef"

// overridden during build with ldflags
var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:    name,
		Usage:   "serve the recipe generation endpoint",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "interface to listen on (overrides SERVER_HOST)",
			},
			&cli.StringFlag{
				Name:  "port",
				Usage: "port to listen on (overrides SERVER_PORT)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: debug, info, warn, error (overrides LOG_LEVEL)",
			},
			&cli.DurationFlag{
				Name:  "shutdown-timeout",
				Usage: "how long to wait for in-flight requests on shutdown",
				Value: 5 * time.Second,
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	// Flags override the environment before validation runs
	for flag, env := range map[string]string{"host": "SERVER_HOST", "port": "SERVER_PORT", "log-level": "LOG_LEVEL"} {
		if v := cmd.String(flag); v != "" {
			if err := os.Setenv(env, v); err != nil {
				return fmt.Errorf("failed to apply --%s: %w", flag, err)
			}
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger := logging.SetDefault(name, version, cfg.LogLevel)
	gin.SetMode(config.GetEnvironment().GinMode())

	if !cfg.HasAPIKey() {
		logger.Warn("GEMINI_API_KEY is not set; recipe requests will fail with a configuration error")
	}

	srv := server.New(cfg, logger)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cmd.Duration("shutdown-timeout"))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

