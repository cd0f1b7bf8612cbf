package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/config"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/downloader"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/extractor"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/fireflies"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/logger"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/pipeline"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/watcher"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/pkg/llm"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	watch := flag.Bool("watch", false, "after downloading, watch the transcripts directory and extract action items from new payloads")
	flag.Parse()

	if err := run(*configPath, *watch); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, watch bool) error {
	ctx := context.Background()

	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded environment variables from .env file")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level)

	client, err := fireflies.New(cfg.Fireflies.APIURL, cfg.Fireflies.APIKey)
	if err != nil {
		return err
	}

	dl := downloader.New(cfg, client, log)
	saved, err := dl.Run(ctx)
	if err != nil {
		return err
	}
	log.Info(ctx, "Downloaded %d transcripts", saved)

	if !watch {
		return nil
	}

	generator, err := llm.NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		return err
	}
	proc := pipeline.New(cfg, extractor.New(cfg, generator, log), log)

	w, err := watcher.New(cfg.Paths.Transcripts, proc.Process, log, cfg.Extraction.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errChan <- err
		}
	}()

	log.Info(ctx, "Watching %s for new transcript payloads. Press Ctrl+C to stop", cfg.Paths.Transcripts)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		cancel()
		return nil
	case err := <-errChan:
		return err
	}
}
