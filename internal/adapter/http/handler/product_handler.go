package handler

import (
	"qa-banking-sandbox/internal/adapter/http/dto"
	"qa-banking-sandbox/internal/core/domain"
	"qa-banking-sandbox/internal/core/ports"
	"qa-banking-sandbox/internal/metrics"
	"qa-banking-sandbox/pkg/apperror"
	"qa-banking-sandbox/pkg/response"

	"github.com/gin-gonic/gin"
)

// ProductHandler handles product request endpoints.
type ProductHandler struct {
	productSvc   ports.ProductService
	reportingSvc ports.ReportingService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productSvc ports.ProductService, reportingSvc ports.ReportingService) *ProductHandler {
	return &ProductHandler{productSvc: productSvc, reportingSvc: reportingSvc}
}

// ListProductRequests handles GET /api/v1/requests with optional
// ?accountId= filter.
func (h *ProductHandler) ListProductRequests(c *gin.Context) {
	requests, err := h.reportingSvc.ListProductRequests(c.Request.Context(), c.Query("accountId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, requests)
}

// CreateProductRequest handles POST /api/v1/requests.
func (h *ProductHandler) CreateProductRequest(c *gin.Context) {
	var req dto.ProductRequestCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	record, err := h.productSvc.CreateProductRequest(c.Request.Context(), ports.ProductRequestInput{
		AccountID:   req.AccountID,
		ProductType: domain.ProductType(req.ProductType),
		ProductName: req.ProductName,
		EtaDays:     *req.EtaDays,
		Note:        req.Note,
	})
	metrics.ProductRequestsTotal.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, record, "Заявка успешно отправлена")
}
