package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/logger"
)

// settleDelay gives the writer time to finish before the payload is read.
const settleDelay = 500 * time.Millisecond

type implWatcher struct {
	payloadDir    string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	wg            sync.WaitGroup
}

// Start blocks, dispatching newly created payload files to the handler until
// the context is canceled. In-flight handlers are drained before returning.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Payload watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.payloadDir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for in-flight extractions to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "Payload watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isPayloadFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-payload file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New payload detected: %s", event.Name)
			time.Sleep(settleDelay)

			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go func(filePath string) {
					defer w.wg.Done()
					defer func() { <-w.semaphore }()

					if err := w.handler(ctx, filePath); err != nil {
						w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
					}
				}(event.Name)
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the underlying file watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isPayloadFile accepts .json transcript payloads and rejects result files so
// the pipeline never re-ingests its own output.
func isPayloadFile(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	if !strings.HasSuffix(name, ".json") {
		return false
	}
	return !strings.HasSuffix(name, ".actions.json")
}
