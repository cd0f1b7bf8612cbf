package extractor

import (
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/config"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/logger"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/pkg/llm"
)

type implExtractor struct {
	generator       llm.Generator
	logger          logger.Logger
	schemaMode      bool
	maxOutputTokens int32
}

// New creates an Extractor on top of the given generator. Schema mode and the
// output ceiling come from config; the credential check already happened when
// the generator was constructed.
func New(cfg *config.Config, gen llm.Generator, log logger.Logger) Extractor {
	return &implExtractor{
		generator:       gen,
		logger:          log,
		schemaMode:      cfg.Gemini.SchemaModeEnabled(),
		maxOutputTokens: int32(cfg.Gemini.MaxOutputTokens),
	}
}
