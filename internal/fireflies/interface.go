// Package fireflies is a minimal client for the Fireflies.ai GraphQL API,
// covering the two queries the downloader needs.
package fireflies

import "context"

// Meta is a transcript listing entry.
type Meta struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Date          int64  `json:"date"`
	TranscriptURL string `json:"transcript_url"`
}

// Speaker is a named meeting participant.
type Speaker struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Sentence is one transcribed utterance; Index orders the transcript.
type Sentence struct {
	Index       int    `json:"index"`
	SpeakerName string `json:"speaker_name"`
	Text        string `json:"text"`
}

// Detail is a full transcript.
type Detail struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	DateString string     `json:"dateString"`
	Speakers   []Speaker  `json:"speakers"`
	Sentences  []Sentence `json:"sentences"`
}

// Client talks to the Fireflies API.
type Client interface {
	// ListRecent returns up to limit transcripts, most recent first.
	// titleFilter narrows by meeting title when non-empty.
	ListRecent(ctx context.Context, limit int, titleFilter string) ([]Meta, error)

	// Get fetches one transcript with speakers and ordered sentences.
	Get(ctx context.Context, id string) (*Detail, error)
}
