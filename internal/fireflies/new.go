package fireflies

import (
	"errors"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrNoCredential is returned by New when no API key is supplied.
var ErrNoCredential = errors.New("fireflies API key is required")

type implClient struct {
	http *resty.Client
}

// New creates a Client for the given GraphQL endpoint. Fails fast on a
// missing credential.
func New(apiURL, apiKey string) (Client, error) {
	if apiKey == "" {
		return nil, ErrNoCredential
	}

	http := resty.New().
		SetBaseURL(apiURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "fireflies-ep-service/1.0").
		SetTimeout(30 * time.Second)

	return &implClient{http: http}, nil
}
