// Package llm wraps the generative backend behind a text-in/text-out
// interface so callers can be tested with a fake.
package llm

import (
	"context"

	"google.golang.org/genai"
)

// Request is a single generation call.
type Request struct {
	// System carries the behavioral instructions, Prompt the task input.
	System string
	Prompt string
	// MaxOutputTokens bounds the response size.
	MaxOutputTokens int32
	// ResponseSchema, when non-nil, asks the backend for JSON constrained to
	// this shape. Backends without schema support ignore it.
	ResponseSchema *genai.Schema
}

// Generator performs one blocking generation call. Implementations must be
// safe for concurrent use.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}
