// Package downloader pulls recent Fireflies transcripts and persists them as
// readable text plus extraction-ready JSON payloads.
package downloader

import (
	"context"

	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/transcript"
)

// Downloader fetches and persists recent transcripts.
type Downloader interface {
	// Run downloads up to the configured number of recent transcripts into
	// the transcripts directory and returns how many were saved.
	Run(ctx context.Context) (int, error)
}

// PayloadMetadata identifies the source meeting of a payload.
type PayloadMetadata struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

// Payload is the extraction-ready JSON file written next to each transcript.
// The watch pipeline consumes these directly.
type Payload struct {
	Metadata     PayloadMetadata   `json:"metadata"`
	Participants []string          `json:"participants"`
	Transcript   []transcript.Turn `json:"transcript"`
	MaxItems     int               `json:"max_items"`
}
