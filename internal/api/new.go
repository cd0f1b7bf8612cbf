// Package api exposes the extraction engine over HTTP.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/config"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/extractor"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/logger"
)

type Handler struct {
	cfg       *config.Config
	extractor extractor.Extractor
	logger    logger.Logger
}

// New creates the API handler set.
func New(cfg *config.Config, ex extractor.Extractor, log logger.Logger) *Handler {
	return &Handler{
		cfg:       cfg,
		extractor: ex,
		logger:    log,
	}
}

// NewRouter wires the handler into a gin engine.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", h.Health)
	router.POST("/action-items", h.CreateActionItems)

	return router
}
