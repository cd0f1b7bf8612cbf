package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/extractor"
	"github.com/zakiquereshy-arvaya/fireflies-ep-service/internal/transcript"
)

// ActionItemsRequest accepts a transcript as either flat text or ordered
// speaker turns. MaxItems defaults to the configured value when omitted.
type ActionItemsRequest struct {
	Transcript   transcript.Transcript `json:"transcript"`
	Participants []string              `json:"participants"`
	MaxItems     *int                  `json:"max_items" binding:"omitnil,gte=1,lte=50"`
}

type ActionItemsResponse struct {
	ActionItems         []extractor.ActionItem `json:"action_items"`
	NumberOfActionItems int                    `json:"number_of_action_items"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CreateActionItems runs one extraction. Caller-input problems map to 400,
// backend and parsing failures to 502.
func (h *Handler) CreateActionItems(c *gin.Context) {
	var req ActionItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Detail: err.Error()})
		return
	}

	maxItems := h.cfg.Extraction.DefaultMaxItems
	if req.MaxItems != nil {
		maxItems = *req.MaxItems
	}

	items, err := h.extractor.Extract(c.Request.Context(), req.Transcript, req.Participants, maxItems)
	if err != nil {
		h.logger.Error(c.Request.Context(), "Extraction failed: %v", err)
		c.JSON(statusFor(err), errorResponse{Detail: err.Error()})
		return
	}

	if items == nil {
		items = []extractor.ActionItem{}
	}
	c.JSON(http.StatusOK, ActionItemsResponse{
		ActionItems:         items,
		NumberOfActionItems: len(items),
	})
}

// statusFor separates caller-input errors from backend/integration errors.
// Everything past normalization involves the model, so it maps to 502.
func statusFor(err error) int {
	if errors.Is(err, transcript.ErrEmpty) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}
