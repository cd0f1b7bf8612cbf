// Package pipeline turns downloaded transcript payloads into persisted
// action-item results: one JSON result and one docx report per payload.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/downloader"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/export"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/extractor"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/transcript"
)

// Result is the persisted output for one payload.
type Result struct {
	Metadata          downloader.PayloadMetadata `json:"metadata"`
	ActionItems       []extractor.ActionItem     `json:"action_items"`
	NumberOfItems     int                        `json:"number_of_action_items"`
	ExtractedAt       string                     `json:"extracted_at"`
	SourcePayloadFile string                     `json:"source_payload_file"`
}

// Process reads one payload file, runs extraction, and writes
// <stem>.actions.json and <stem>.actions.docx into the results directory.
func (p *implProcessor) Process(ctx context.Context, payloadPath string) error {
	start := time.Now()
	p.logger.Info(ctx, "Processing payload: %s", payloadPath)

	payload, err := readPayload(payloadPath)
	if err != nil {
		return err
	}

	maxItems := payload.MaxItems
	if maxItems <= 0 {
		maxItems = p.cfg.Extraction.DefaultMaxItems
	}

	items, err := p.extractor.Extract(ctx, transcript.FromTurns(payload.Transcript), payload.Participants, maxItems)
	if err != nil {
		return fmt.Errorf("extract %s: %w", payloadPath, err)
	}

	if err := os.MkdirAll(p.cfg.Paths.Results, 0755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(payloadPath), filepath.Ext(payloadPath))
	result := Result{
		Metadata:          payload.Metadata,
		ActionItems:       items,
		NumberOfItems:     len(items),
		ExtractedAt:       time.Now().UTC().Format(time.RFC3339),
		SourcePayloadFile: filepath.Base(payloadPath),
	}

	jsonPath := filepath.Join(p.cfg.Paths.Results, stem+".actions.json")
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", jsonPath, err)
	}

	reportTitle := payload.Metadata.Title
	if reportTitle == "" {
		reportTitle = stem
	}
	docxPath := filepath.Join(p.cfg.Paths.Results, stem+".actions.docx")
	if err := export.WriteReport(reportTitle, items, docxPath); err != nil {
		p.logger.Warn(ctx, "Failed to write docx report for %s: %v", stem, err)
	}

	p.logger.Info(ctx, "Extracted %d action items from %s in %s", len(items), stem, time.Since(start))
	return nil
}

func readPayload(path string) (*downloader.Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	var payload downloader.Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode payload %s: %w", path, err)
	}
	return &payload, nil
}
