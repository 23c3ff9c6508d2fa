package handler

import (
	"math"

	"qa-banking-sandbox/internal/adapter/http/dto"
	"qa-banking-sandbox/internal/core/ports"
	"qa-banking-sandbox/internal/metrics"
	"qa-banking-sandbox/pkg/apperror"
	"qa-banking-sandbox/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TransferHandler handles the balance-mutating endpoints.
type TransferHandler struct {
	ledgerSvc ports.LedgerService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(ledgerSvc ports.LedgerService) *TransferHandler {
	return &TransferHandler{ledgerSvc: ledgerSvc}
}

// CreateTransfer handles POST /api/v1/transfers.
func (h *TransferHandler) CreateTransfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	amount, ok := toDecimal(req.Amount)
	if !ok {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	result, err := h.ledgerSvc.CreateTransfer(c.Request.Context(), ports.TransferRequest{
		FromAccountID:   req.FromAccountID,
		ToAccountNumber: req.ToAccountNumber,
		Amount:          amount,
		Description:     req.Description,
	})
	metrics.TransfersTotal.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result, "Перевод успешно создан")
}

// CreateTopUp handles POST /api/v1/topups.
func (h *TransferHandler) CreateTopUp(c *gin.Context) {
	var req dto.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	amount, ok := toDecimal(req.Amount)
	if !ok {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	txn, err := h.ledgerSvc.CreateTopUp(c.Request.Context(), ports.TopUpRequest{
		AccountID:   req.AccountID,
		Amount:      amount,
		Description: req.Description,
	})
	metrics.TopUpsTotal.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, txn, "Пополнение успешно выполнено")
}

// toDecimal converts a bound amount to a decimal, rejecting non-finite
// values before decimal conversion can panic on them.
func toDecimal(f *float64) (decimal.Decimal, bool) {
	if f == nil || math.IsNaN(*f) || math.IsInf(*f, 0) {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat(*f), true
}
