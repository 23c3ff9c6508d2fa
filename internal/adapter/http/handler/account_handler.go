package handler

import (
	"strconv"

	"qa-banking-sandbox/internal/core/ports"
	"qa-banking-sandbox/pkg/apperror"
	"qa-banking-sandbox/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles account and transaction read endpoints.
type AccountHandler struct {
	reportingSvc ports.ReportingService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(reportingSvc ports.ReportingService) *AccountHandler {
	return &AccountHandler{reportingSvc: reportingSvc}
}

// ListAccounts handles GET /api/v1/accounts.
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.reportingSvc.ListAccounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, accounts)
}

// GetAccount handles GET /api/v1/accounts/:id.
func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.reportingSvc.GetAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if account == nil {
		response.Error(c, apperror.ErrAccountNotFound())
		return
	}
	response.OK(c, account)
}

// ListAccountTransactions handles GET /api/v1/accounts/:id/transactions.
// Results come newest-first; ?limit=N trims to the top N.
func (h *AccountHandler) ListAccountTransactions(c *gin.Context) {
	accountID := c.Param("id")

	account, err := h.reportingSvc.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if account == nil {
		response.Error(c, apperror.ErrAccountNotFound())
		return
	}

	limit := parseLimit(c.Query("limit"))
	txns, err := h.reportingSvc.ListTransactions(c.Request.Context(), accountID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, txns)
}

// ListTransactions handles GET /api/v1/transactions.
func (h *AccountHandler) ListTransactions(c *gin.Context) {
	limit := parseLimit(c.Query("limit"))
	txns, err := h.reportingSvc.ListTransactions(c.Request.Context(), c.Query("accountId"), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, txns)
}

func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
