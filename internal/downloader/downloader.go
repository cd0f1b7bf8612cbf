package downloader

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/fireflies"
)

// Run lists recent transcripts, fetches each in full, and writes a .txt and a
// .json payload per meeting into the transcripts directory. Individual fetch
// or write failures are logged and skipped so one bad meeting does not sink
// the batch.
func (d *implDownloader) Run(ctx context.Context) (int, error) {
	outputDir := d.cfg.Paths.Transcripts
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}

	metas, err := d.client.ListRecent(ctx, d.cfg.Fireflies.Limit, d.cfg.Fireflies.TitleFilter)
	if err != nil {
		return 0, fmt.Errorf("list transcripts: %w", err)
	}
	if len(metas) == 0 {
		d.logger.Info(ctx, "No transcripts returned by the API")
		return 0, nil
	}

	d.logger.Info(ctx, "Downloading %d transcripts to %s", len(metas), outputDir)

	usedNames := make(map[string]bool)
	saved := 0
	for _, meta := range metas {
		if meta.ID == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return saved, err
		}

		detail, err := d.client.Get(ctx, meta.ID)
		if err != nil {
			d.logger.Error(ctx, "Failed to fetch transcript %s: %v", meta.ID, err)
			continue
		}

		title := detail.Title
		if title == "" {
			title = meta.Title
		}
		if title == "" {
			title = meta.ID
		}
		stem := uniqueName(sanitizeFilename(title), usedNames)

		if err := d.save(detail, outputDir, stem); err != nil {
			d.logger.Error(ctx, "Failed to save transcript %s: %v", meta.ID, err)
			continue
		}

		d.logger.Info(ctx, "Saved %s.txt and %s.json", stem, stem)
		saved++
	}

	return saved, nil
}

// uniqueName suffixes a duplicate stem with _2, _3, ... within one batch.
func uniqueName(base string, used map[string]bool) string {
	name := base
	counter := 1
	for used[name] {
		counter++
		name = fmt.Sprintf("%s_%d", base, counter)
	}
	used[name] = true
	return name
}

func (d *implDownloader) save(detail *fireflies.Detail, outputDir, stem string) error {
	txtPath := filepath.Join(outputDir, stem+".txt")
	if err := os.WriteFile(txtPath, []byte(formatTranscriptText(detail)), 0644); err != nil {
		return fmt.Errorf("write %s: %w", txtPath, err)
	}

	payload := Payload{
		Metadata: PayloadMetadata{
			ID:    detail.ID,
			Title: detail.Title,
			Date:  cleanDatetime(detail.DateString),
		},
		Participants: extractParticipants(detail),
		Transcript:   buildTurns(detail),
		MaxItems:     d.cfg.Extraction.DefaultMaxItems,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	jsonPath := filepath.Join(outputDir, stem+".json")
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", jsonPath, err)
	}
	return nil
}
