package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/api"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/config"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/extractor"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/logger"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/pkg/llm"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	ctx := context.Background()

	// Load .env before the config reads the environment.
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded environment variables from .env file")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	generator, err := llm.NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Error(ctx, "Failed to create Gemini backend: %v", err)
		os.Exit(1)
	}

	ex := extractor.New(cfg, generator, log)
	router := api.NewRouter(api.New(cfg, ex, log))

	log.Info(ctx, "Action-item extraction service listening on %s (model: %s, schema mode: %v)",
		cfg.Server.Addr, cfg.Gemini.Model, cfg.Gemini.SchemaModeEnabled())

	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Error(ctx, "Server stopped: %v", err)
		os.Exit(1)
	}
}
