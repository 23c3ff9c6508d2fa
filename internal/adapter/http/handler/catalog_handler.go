package handler

import (
	"qa-banking-sandbox/internal/adapter/http/dto"
	"qa-banking-sandbox/internal/core/ports"
	"qa-banking-sandbox/pkg/response"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles the recipient and card read endpoints.
type CatalogHandler struct {
	reportingSvc ports.ReportingService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(reportingSvc ports.ReportingService) *CatalogHandler {
	return &CatalogHandler{reportingSvc: reportingSvc}
}

// ListRecipients handles GET /api/v1/recipients.
func (h *CatalogHandler) ListRecipients(c *gin.Context) {
	recipients, err := h.reportingSvc.ListRecipients(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OKWithMeta(c, recipients, dto.ListMeta{Total: len(recipients)})
}

// ListCards handles GET /api/v1/cards with optional ?accountId= filter.
func (h *CatalogHandler) ListCards(c *gin.Context) {
	cards, err := h.reportingSvc.ListCards(c.Request.Context(), c.Query("accountId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, cards)
}
