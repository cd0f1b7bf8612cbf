package downloader

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/config"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/fireflies"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/logger"
)

type fakeClient struct {
	metas   []fireflies.Meta
	details map[string]*fireflies.Detail
	listErr error
}

func (f *fakeClient) ListRecent(ctx context.Context, limit int, titleFilter string) ([]fireflies.Meta, error) {
	return f.metas, f.listErr
}

func (f *fakeClient) Get(ctx context.Context, id string) (*fireflies.Detail, error) {
	detail, ok := f.details[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return detail, nil
}

func newTestDownloader(t *testing.T, client fireflies.Client) (Downloader, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{Paths: config.PathsConfig{Transcripts: dir}}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	cfg.Paths.Transcripts = dir
	return New(cfg, client, logger.NewWithWriter("error", io.Discard)), dir
}

func TestRunWritesTxtAndPayload(t *testing.T) {
	client := &fakeClient{
		metas: []fireflies.Meta{{ID: "t1", Title: "Weekly sync", Date: 100}},
		details: map[string]*fireflies.Detail{
			"t1": {
				ID:         "t1",
				Title:      "Weekly sync",
				DateString: "2026-08-28T10:00:00Z",
				Speakers:   []fireflies.Speaker{{ID: "1", Name: "Mark"}},
				Sentences: []fireflies.Sentence{
					{Index: 0, SpeakerName: "Mark", Text: "I will send the report"},
				},
			},
		},
	}

	d, dir := newTestDownloader(t, client)
	saved, err := d.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if saved != 1 {
		t.Fatalf("saved = %d, want 1", saved)
	}

	if _, err := os.Stat(filepath.Join(dir, "Weekly_sync.txt")); err != nil {
		t.Errorf("missing txt file: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "Weekly_sync.json"))
	if err != nil {
		t.Fatalf("read payload: %v", err)
	}
	var payload Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.Metadata.ID != "t1" {
		t.Errorf("Metadata.ID = %q, want t1", payload.Metadata.ID)
	}
	if payload.MaxItems != 12 {
		t.Errorf("MaxItems = %d, want default 12", payload.MaxItems)
	}
	if len(payload.Participants) != 1 || payload.Participants[0] != "Mark" {
		t.Errorf("Participants = %v", payload.Participants)
	}
	if len(payload.Transcript) != 1 || payload.Transcript[0].Text != "I will send the report" {
		t.Errorf("Transcript = %v", payload.Transcript)
	}
}

func TestRunDuplicateTitles(t *testing.T) {
	client := &fakeClient{
		metas: []fireflies.Meta{
			{ID: "a", Title: "Sync", Date: 2},
			{ID: "b", Title: "Sync", Date: 1},
		},
		details: map[string]*fireflies.Detail{
			"a": {ID: "a", Title: "Sync", Sentences: []fireflies.Sentence{{SpeakerName: "M", Text: "x"}}},
			"b": {ID: "b", Title: "Sync", Sentences: []fireflies.Sentence{{SpeakerName: "M", Text: "y"}}},
		},
	}

	d, dir := newTestDownloader(t, client)
	saved, err := d.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if saved != 2 {
		t.Fatalf("saved = %d, want 2", saved)
	}
	for _, name := range []string{"Sync.json", "Sync_2.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestRunSkipsFailedFetches(t *testing.T) {
	client := &fakeClient{
		metas: []fireflies.Meta{
			{ID: "broken", Title: "Broken"},
			{ID: "good", Title: "Good"},
		},
		details: map[string]*fireflies.Detail{
			"good": {ID: "good", Title: "Good", Sentences: []fireflies.Sentence{{SpeakerName: "M", Text: "x"}}},
		},
	}

	d, _ := newTestDownloader(t, client)
	saved, err := d.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if saved != 1 {
		t.Errorf("saved = %d, want 1 (broken fetch skipped)", saved)
	}
}

func TestRunListError(t *testing.T) {
	client := &fakeClient{listErr: errors.New("api down")}
	d, _ := newTestDownloader(t, client)
	if _, err := d.Run(context.Background()); err == nil {
		t.Error("Run() expected error when listing fails")
	}
}

func TestRunEmptyList(t *testing.T) {
	d, _ := newTestDownloader(t, &fakeClient{})
	saved, err := d.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if saved != 0 {
		t.Errorf("saved = %d, want 0", saved)
	}
}
