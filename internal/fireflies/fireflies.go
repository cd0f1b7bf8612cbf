package fireflies

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
)

const listQuery = `
query Transcripts($title: String, $limit: Int, $skip: Int) {
  transcripts(title: $title, limit: $limit, skip: $skip) {
    id
    title
    date
    transcript_url
  }
}`

const getQuery = `
query Transcript($transcriptId: String!) {
  transcript(id: $transcriptId) {
    id
    title
    dateString
    speakers {
      id
      name
    }
    sentences {
      index
      speaker_name
      text
    }
  }
}`

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (c *implClient) query(ctx context.Context, query string, variables map[string]any, out any) error {
	var result graphqlResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(graphqlRequest{Query: query, Variables: variables}).
		SetResult(&result).
		Post("")
	if err != nil {
		return fmt.Errorf("fireflies request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("fireflies API HTTP %d: %s", resp.StatusCode(), resp.String())
	}
	if len(result.Errors) > 0 {
		return fmt.Errorf("fireflies API error: %s", result.Errors[0].Message)
	}
	if err := json.Unmarshal(result.Data, out); err != nil {
		return fmt.Errorf("decode fireflies response: %w", err)
	}
	return nil
}

func (c *implClient) ListRecent(ctx context.Context, limit int, titleFilter string) ([]Meta, error) {
	variables := map[string]any{
		"limit": limit,
		"skip":  0,
	}
	if titleFilter != "" {
		variables["title"] = titleFilter
	} else {
		variables["title"] = nil
	}

	var data struct {
		Transcripts []Meta `json:"transcripts"`
	}
	if err := c.query(ctx, listQuery, variables, &data); err != nil {
		return nil, err
	}

	transcripts := data.Transcripts
	sort.SliceStable(transcripts, func(i, j int) bool {
		return transcripts[i].Date > transcripts[j].Date
	})
	if len(transcripts) > limit {
		transcripts = transcripts[:limit]
	}
	return transcripts, nil
}

func (c *implClient) Get(ctx context.Context, id string) (*Detail, error) {
	var data struct {
		Transcript *Detail `json:"transcript"`
	}
	if err := c.query(ctx, getQuery, map[string]any{"transcriptId": id}, &data); err != nil {
		return nil, err
	}
	if data.Transcript == nil {
		return nil, fmt.Errorf("transcript %s not found", id)
	}
	return data.Transcript, nil
}
