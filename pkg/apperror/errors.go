package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Accounts (ACC) ----

func ErrAccountNotFound() *AppError {
	return New("ACC_001", "Account not found", http.StatusNotFound)
}

func ErrAccountRestricted() *AppError {
	return New("ACC_002", "Account is temporarily unavailable for operations", http.StatusForbidden)
}

// ---- Ledger Business Logic (PAY) ----

func ErrInvalidAmount() *AppError {
	return New("PAY_001", "Invalid amount", http.StatusBadRequest)
}

func ErrLimitExceeded() *AppError {
	return New("PAY_002", "Daily transfer limit exceeded", http.StatusUnprocessableEntity)
}

func ErrInsufficientFunds() *AppError {
	return New("PAY_003", "Insufficient funds in account", http.StatusPaymentRequired)
}

// ---- Product Requests (REQ) ----

func ErrRequestValidation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request-shape validation error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}
