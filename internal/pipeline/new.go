package pipeline

import (
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/config"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/extractor"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/logger"
)

type implProcessor struct {
	cfg       *config.Config
	extractor extractor.Extractor
	logger    logger.Logger
}

// New creates a Processor that writes results into the configured results
// directory.
func New(cfg *config.Config, ex extractor.Extractor, log logger.Logger) Processor {
	return &implProcessor{
		cfg:       cfg,
		extractor: ex,
		logger:    log,
	}
}
