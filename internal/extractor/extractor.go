package extractor

import (
	"context"
	"fmt"

	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/transcript"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/pkg/llm"
)

// Extract runs the pipeline: normalize, build the prompt pair, one backend
// call, parse, cap. Normalization failure propagates unchanged so the caller
// sees transcript.ErrEmpty before any model call is spent.
func (e *implExtractor) Extract(ctx context.Context, tr transcript.Transcript, participants []string, maxItems int) ([]ActionItem, error) {
	if maxItems <= 0 {
		return nil, fmt.Errorf("max items must be positive, got %d", maxItems)
	}

	canonical, err := tr.Normalize()
	if err != nil {
		return nil, err
	}

	req := llm.Request{
		System:          buildSystemPrompt(maxItems),
		Prompt:          buildUserPrompt(participants, maxItems, canonical),
		MaxOutputTokens: e.maxOutputTokens,
	}
	if e.schemaMode {
		req.ResponseSchema = responseSchema()
	}

	e.logger.Debug(ctx, "Extracting action items: %d transcript chars, %d participants, max %d items",
		len(canonical), len(participants), maxItems)

	raw, err := e.generator.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate action items: %w", err)
	}

	items, err := parseItems(raw)
	if err != nil {
		return nil, err
	}

	// Defensive cap: keep the first maxItems regardless of what the model
	// returned.
	if len(items) > maxItems {
		e.logger.Warn(ctx, "Model returned %d items, capping to %d", len(items), maxItems)
		items = items[:maxItems]
	}

	e.logger.Info(ctx, "Extracted %d action items", len(items))
	return items, nil
}
