// Package extractor turns a meeting transcript into a capped list of
// actionable follow-up items via a single generative-model call.
package extractor

import (
	"context"

	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/transcript"
)

// ActionItem is one follow-up task extracted from a transcript. Owner is a
// participant name or the literal "Unassigned". DueDate and Evidence are nil
// when the model could not ground them in the transcript.
type ActionItem struct {
	Title      string  `json:"title"`
	Owner      string  `json:"owner"`
	DueDate    *string `json:"due_date"`
	Evidence   *string `json:"evidence"`
	Confidence float64 `json:"confidence"`
}

// Extractor runs the extraction pipeline. Implementations are stateless and
// safe for concurrent use; each call is one blocking backend request with no
// retries and no partial results.
type Extractor interface {
	Extract(ctx context.Context, tr transcript.Transcript, participants []string, maxItems int) ([]ActionItem, error)
}
