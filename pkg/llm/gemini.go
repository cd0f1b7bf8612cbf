package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ErrNoCredential is returned by NewGemini when no API key is supplied.
var ErrNoCredential = errors.New("gemini API key is required")

type implGemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Generator backed by the Gemini API. It fails fast on a
// missing credential so no request is ever attempted without one.
func NewGemini(ctx context.Context, apiKey, model string) (Generator, error) {
	if apiKey == "" {
		return nil, ErrNoCredential
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &implGemini{client: client, model: model}, nil
}

// Generate sends one request and concatenates the text parts of the first
// candidate. An empty response is returned as an empty string, not an error;
// the caller decides what that means.
func (g *implGemini) Generate(ctx context.Context, req Request) (string, error) {
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: req.MaxOutputTokens,
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.ResponseSchema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = req.ResponseSchema
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", nil
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return text, nil
}
