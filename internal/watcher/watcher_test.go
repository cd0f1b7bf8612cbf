package watcher

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/logger"
)

func TestIsPayloadFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/data/Weekly_sync.json", true},
		{"/data/Weekly_sync.JSON", true},
		{"/data/Weekly_sync.txt", false},
		{"/data/Weekly_sync.actions.json", false},
		{"/data/report.docx", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := isPayloadFile(tt.path); got != tt.want {
				t.Errorf("isPayloadFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestWatcherDispatchesPayloads(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	var handled []string
	handler := func(ctx context.Context, filePath string) error {
		mu.Lock()
		defer mu.Unlock()
		handled = append(handled, filepath.Base(filePath))
		return nil
	}

	w, err := New(dir, handler, logger.NewWithWriter("error", io.Discard), 2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// Give the watcher a moment to arm before creating files.
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "meeting.json"), []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "meeting.actions.json"), []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		mu.Lock()
		n := len(handled)
		mu.Unlock()
		if n >= 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("handler was not invoked for payload file")
		case <-time.After(50 * time.Millisecond):
		}
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Start() returned %v, want context.Canceled", err)
	}

	mu.Lock()
	defer mu.Unlock()
	for _, name := range handled {
		if name != "meeting.json" {
			t.Errorf("handled unexpected file %q", name)
		}
	}
}

func TestNewBadDirectory(t *testing.T) {
	_, err := New("/nonexistent/path/zz", func(ctx context.Context, p string) error { return nil },
		logger.NewWithWriter("error", io.Discard), 1)
	if err == nil {
		t.Error("New() expected error for missing directory")
	}
}
