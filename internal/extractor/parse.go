package extractor

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseItems recovers the action-item list from raw model output. Two tiers:
// strip a markdown code fence if present, then strict JSON parsing; on
// failure, retry on the substring between the first '{' and the last '}'.
func parseItems(raw string) ([]ActionItem, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	text = stripFence(text)

	items, err := decodePayload(text)
	if err == nil {
		return items, nil
	}
	if _, shape := err.(*shapeError); shape {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}

	recovered, ok := extractBraces(text)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	items, err = decodePayload(recovered)
	if err != nil {
		if _, shape := err.(*shapeError); shape {
			return nil, fmt.Errorf("%w: %v", ErrInvalidShape, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return items, nil
}

// shapeError marks a payload that parsed as JSON but whose items field is not
// a list of action items. It must not trigger brace-extraction recovery.
type shapeError struct{ reason string }

func (e *shapeError) Error() string { return e.reason }

// decodePayload parses one JSON document. A missing items field yields an
// empty result, matching a model that found nothing actionable.
func decodePayload(text string) ([]ActionItem, error) {
	var payload struct {
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(string(payload.Items))
	if trimmed == "" || trimmed == "null" {
		return []ActionItem{}, nil
	}
	if !strings.HasPrefix(trimmed, "[") {
		return nil, &shapeError{reason: "items is not a list"}
	}

	var items []ActionItem
	if err := json.Unmarshal(payload.Items, &items); err != nil {
		return nil, &shapeError{reason: err.Error()}
	}
	return items, nil
}

// stripFence removes an enclosing markdown code fence, including an optional
// language tag after the opening backticks.
func stripFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	body := strings.TrimPrefix(text, "```")
	if idx := strings.Index(body, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(body[:idx])
		// The first line is a language tag only if it has no JSON content.
		if firstLine == "" || !strings.ContainsAny(firstLine, "{[") {
			body = body[idx+1:]
		}
	} else {
		body = strings.TrimSpace(strings.TrimPrefix(body, "json"))
	}
	body = strings.TrimSuffix(strings.TrimSpace(body), "```")
	return strings.TrimSpace(body)
}

// extractBraces returns the substring spanning the first '{' through the last
// '}', the recovery pass for responses with surrounding prose.
func extractBraces(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}
