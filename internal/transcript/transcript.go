// Package transcript models meeting transcripts and reduces them to the
// canonical text block the extraction engine reasons over.
package transcript

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrEmpty is returned when a transcript has no usable content after
// normalization. Callers check it before spending a model call.
var ErrEmpty = errors.New("transcript empty after normalization")

// DefaultSpeaker substitutes for a missing or blank speaker name.
const DefaultSpeaker = "Speaker"

// Turn is one utterance by one speaker. Turns have no identity beyond their
// position in the sequence.
type Turn struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// Transcript is a tagged union over the two accepted representations: a flat
// text block, or an ordered sequence of speaker turns. The zero value is an
// empty raw-text transcript.
type Transcript struct {
	raw   string
	turns []Turn
	isRaw bool
}

// FromText wraps an already-flat transcript. Normalize returns it unchanged.
func FromText(text string) Transcript {
	return Transcript{raw: text, isRaw: true}
}

// FromTurns wraps an ordered turn sequence.
func FromTurns(turns []Turn) Transcript {
	return Transcript{turns: turns}
}

// IsRaw reports whether the transcript is the flat-text variant.
func (t Transcript) IsRaw() bool {
	return t.isRaw
}

// Turns returns the turn sequence, nil for the raw-text variant.
func (t Transcript) Turns() []Turn {
	return t.turns
}

// UnmarshalJSON accepts either a JSON string or an array of
// {"speaker":..., "text":...} objects, matching the API request contract.
func (t *Transcript) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "\"") {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*t = FromText(raw)
		return nil
	}

	var turns []Turn
	if err := json.Unmarshal(data, &turns); err != nil {
		return fmt.Errorf("transcript must be a string or an array of speaker turns: %w", err)
	}
	*t = FromTurns(turns)
	return nil
}

// MarshalJSON emits the representation the transcript was built from.
func (t Transcript) MarshalJSON() ([]byte, error) {
	if t.isRaw {
		return json.Marshal(t.raw)
	}
	if t.turns == nil {
		return json.Marshal([]Turn{})
	}
	return json.Marshal(t.turns)
}

// Normalize reduces the transcript to its canonical text block: one
// "<speaker>: <text>" line per retained turn, newline-joined, trimmed.
// Raw-text input is returned unchanged. Turns whose trimmed text is empty are
// dropped; a blank speaker becomes DefaultSpeaker. Returns ErrEmpty when
// nothing remains.
func (t Transcript) Normalize() (string, error) {
	if t.isRaw {
		if strings.TrimSpace(t.raw) == "" {
			return "", ErrEmpty
		}
		return t.raw, nil
	}

	lines := make([]string, 0, len(t.turns))
	for _, turn := range t.turns {
		speaker := strings.TrimSpace(turn.Speaker)
		if speaker == "" {
			speaker = DefaultSpeaker
		}
		text := strings.TrimSpace(turn.Text)
		if text == "" {
			continue
		}
		lines = append(lines, speaker+": "+text)
	}

	canonical := strings.TrimSpace(strings.Join(lines, "\n"))
	if canonical == "" {
		return "", ErrEmpty
	}
	return canonical, nil
}
