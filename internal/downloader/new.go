package downloader

import (
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/config"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/fireflies"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/logger"
)

type implDownloader struct {
	cfg    *config.Config
	client fireflies.Client
	logger logger.Logger
}

// New creates a Downloader using the given Fireflies client.
func New(cfg *config.Config, client fireflies.Client, log logger.Logger) Downloader {
	return &implDownloader{
		cfg:    cfg,
		client: client,
		logger: log,
	}
}
