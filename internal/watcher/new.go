package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/logger"
)

// New creates a Watcher over payloadDir. At most maxConcurrent payloads are
// handled at once.
func New(payloadDir string, handler EventHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsWatcher.Add(payloadDir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &implWatcher{
		payloadDir:    payloadDir,
		handler:       handler,
		logger:        log,
		watcher:       fsWatcher,
		maxConcurrent: maxConcurrent,
		semaphore:     make(chan struct{}, maxConcurrent),
	}, nil
}
