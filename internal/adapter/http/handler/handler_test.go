package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"qa-banking-sandbox/internal/adapter/storage/memory"
	"qa-banking-sandbox/internal/core/ports"
	"qa-banking-sandbox/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the full HTTP stack over a freshly seeded store with
// rate limiting disabled.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	store := memory.NewStore(true)
	policy := service.DefaultPolicy()
	log := zerolog.Nop()

	return SetupRouter(RouterDeps{
		LedgerSvc:    service.NewLedgerService(store.Accounts, store.Transactions, store.Recipients, store.Transactor, policy, log),
		ProductSvc:   service.NewProductService(store.Accounts, store.Requests, store.Transactor, log),
		ReportingSvc: service.NewReportingService(store.Accounts, store.Transactions, store.Recipients, store.Cards, store.Requests),
		HealthCheckers: []ports.HealthChecker{
			memory.NewHealthCheck(store),
		},
		Logger: log,
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	envelope := decodeEnvelope(t, w)
	code, _ := envelope["error_code"].(string)
	return code
}

// assertAmount compares a decimal field from a decoded JSON body, which
// marshals as a quoted string, against an expected value.
func assertAmount(t *testing.T, expected string, field any) {
	t.Helper()
	raw, ok := field.(string)
	require.True(t, ok, "amount field is %T, not string", field)
	assert.True(t, decimal.RequireFromString(raw).Equal(decimal.RequireFromString(expected)),
		"got %s, want %s", raw, expected)
}

// ==================== Read Endpoints ====================

func TestListAccounts(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/v1/accounts", nil)

	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	data, ok := envelope["data"].([]any)
	require.True(t, ok)
	assert.Len(t, data, 4)
	assert.NotEmpty(t, envelope["request_id"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestGetAccount(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/accounts/acc-001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "40817810500010000001", data["accountNumber"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/accounts/acc-999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ACC_001", errorCode(t, w))
}

func TestListAccountTransactions(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/accounts/acc-001/transactions?limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	data := envelope["data"].([]any)
	require.Len(t, data, 2)
	newest := data[0].(map[string]any)
	assert.Equal(t, "txn-1003", newest["id"])

	w = doJSON(t, r, http.MethodGet, "/api/v1/accounts/acc-999/transactions", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ACC_001", errorCode(t, w))
}

func TestListTransactions_Filtered(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/transactions?accountId=acc-003", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeEnvelope(t, w)["data"].([]any)
	assert.Len(t, data, 2)

	w = doJSON(t, r, http.MethodGet, "/api/v1/transactions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeEnvelope(t, w)["data"].([]any)
	assert.Len(t, data, 7)
}

func TestListRecipients(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/v1/recipients", nil)

	require.Equal(t, http.StatusOK, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Len(t, envelope["data"].([]any), 6)
	meta := envelope["meta"].(map[string]any)
	assert.Equal(t, float64(6), meta["total"])
}

func TestListCards(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/cards?accountId=acc-001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeEnvelope(t, w)["data"].([]any), 2)

	w = doJSON(t, r, http.MethodGet, "/api/v1/cards", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeEnvelope(t, w)["data"].([]any), 3)
}

// ==================== Transfers ====================

func TestCreateTransfer_External(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/transfers", gin.H{
		"fromAccountId":   "acc-001",
		"toAccountNumber": "40000000000000000099",
		"amount":          15000,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	envelope := decodeEnvelope(t, w)
	assert.Equal(t, "Перевод успешно создан", envelope["message"])
	data := envelope["data"].(map[string]any)
	assert.Equal(t, false, data["isInternal"])
	assertAmount(t, "112.50", data["commission"])
	assertAmount(t, "15112.50", data["totalDebited"])
	assert.NotNil(t, data["fee"])
}

func TestCreateTransfer_Internal(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/transfers", gin.H{
		"fromAccountId":   "acc-001",
		"toAccountNumber": "42301810000020000002",
		"amount":          2000,
		"description":     "На сбережения",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := decodeEnvelope(t, w)["data"].(map[string]any)
	assert.Equal(t, true, data["isInternal"])
	assertAmount(t, "0", data["commission"])
	assert.Nil(t, data["fee"])

	// The destination account reflects the credit.
	w = doJSON(t, r, http.MethodGet, "/api/v1/accounts/acc-002", nil)
	require.Equal(t, http.StatusOK, w.Code)
	account := decodeEnvelope(t, w)["data"].(map[string]any)
	assertAmount(t, "91250", account["balance"])
}

func TestCreateTransfer_ErrorMapping(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name       string
		body       gin.H
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing amount",
			body:       gin.H{"fromAccountId": "acc-001", "toAccountNumber": "40000000000000000099"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "REQ_001",
		},
		{
			name:       "malformed account number",
			body:       gin.H{"fromAccountId": "acc-001", "toAccountNumber": "123", "amount": 100},
			wantStatus: http.StatusBadRequest,
			wantCode:   "REQ_001",
		},
		{
			name:       "zero amount",
			body:       gin.H{"fromAccountId": "acc-001", "toAccountNumber": "40000000000000000099", "amount": 0},
			wantStatus: http.StatusBadRequest,
			wantCode:   "PAY_001",
		},
		{
			name:       "negative amount",
			body:       gin.H{"fromAccountId": "acc-001", "toAccountNumber": "40000000000000000099", "amount": -500},
			wantStatus: http.StatusBadRequest,
			wantCode:   "PAY_001",
		},
		{
			name:       "unknown source account",
			body:       gin.H{"fromAccountId": "acc-999", "toAccountNumber": "40000000000000000099", "amount": 100},
			wantStatus: http.StatusNotFound,
			wantCode:   "ACC_001",
		},
		{
			name:       "over daily limit",
			body:       gin.H{"fromAccountId": "acc-001", "toAccountNumber": "40000000000000000099", "amount": 300001},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "PAY_002",
		},
		{
			name:       "insufficient funds",
			body:       gin.H{"fromAccountId": "acc-003", "toAccountNumber": "40000000000000000099", "amount": 80000},
			wantStatus: http.StatusPaymentRequired,
			wantCode:   "PAY_003",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/v1/transfers", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			assert.Equal(t, tt.wantCode, errorCode(t, w))
		})
	}
}

// ==================== Top-ups ====================

func TestCreateTopUp(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/topups", gin.H{
		"accountId": "acc-001",
		"amount":    500.50,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	envelope := decodeEnvelope(t, w)
	assert.Equal(t, "Пополнение успешно выполнено", envelope["message"])
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "credit", data["type"])
	assert.Equal(t, "topup", data["category"])
	assertAmount(t, "154730.95", data["balanceAfter"])
}

func TestCreateTopUp_Errors(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/topups", gin.H{"accountId": "acc-001"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "REQ_001", errorCode(t, w))

	w = doJSON(t, r, http.MethodPost, "/api/v1/topups", gin.H{"accountId": "acc-999", "amount": 100})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ACC_001", errorCode(t, w))

	w = doJSON(t, r, http.MethodPost, "/api/v1/topups", gin.H{"accountId": "acc-001", "amount": -10})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "PAY_001", errorCode(t, w))
}

// ==================== Product Requests ====================

func TestCreateProductRequest(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/requests", gin.H{
		"accountId":   "acc-001",
		"productType": "card",
		"productName": "Sprintest Premium Black",
		"etaDays":     5,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	envelope := decodeEnvelope(t, w)
	assert.Equal(t, "Заявка успешно отправлена", envelope["message"])
	data := envelope["data"].(map[string]any)
	assert.Equal(t, "pending", data["status"])

	// It shows up in the listing afterwards.
	w = doJSON(t, r, http.MethodGet, "/api/v1/requests?accountId=acc-001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeEnvelope(t, w)["data"].([]any), 2)
}

func TestCreateProductRequest_Validation(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/requests", gin.H{
		"accountId":   "acc-001",
		"productType": "loan",
		"productName": "Sprintest Loan",
		"etaDays":     3,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "REQ_001", errorCode(t, w))

	w = doJSON(t, r, http.MethodPost, "/api/v1/requests", gin.H{
		"accountId":   "acc-999",
		"productType": "card",
		"productName": "Sprintest Black",
		"etaDays":     3,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ACC_001", errorCode(t, w))
}

// ==================== Health ====================

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	deps := body["dependencies"].(map[string]any)
	assert.Equal(t, "healthy", deps["ledger-store"])
}
