package watcher

import "context"

// Watcher monitors a directory for new transcript payload files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one payload file.
type EventHandler func(ctx context.Context, filePath string) error
