package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies an account product.
type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
	AccountTypeCredit   AccountType = "credit"
)

// AccountStatus represents the operational state of an account.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusInactive AccountStatus = "inactive"
	AccountStatusFrozen   AccountStatus = "frozen"
)

// Currency is an ISO-ish currency code carried by accounts and transactions.
type Currency string

const (
	CurrencyRUB Currency = "RUB"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// Account is a customer account in the ledger. Balance is always kept
// rounded to 2 decimal places after any mutation.
type Account struct {
	ID                 string          `json:"id"`
	HolderName         string          `json:"holderName"`
	AccountNumber      string          `json:"accountNumber"`
	Type               AccountType     `json:"type"`
	Balance            decimal.Decimal `json:"balance"`
	Currency           Currency        `json:"currency"`
	Status             AccountStatus   `json:"status"`
	CreatedAt          time.Time       `json:"createdAt"`
	DailyTransferLimit decimal.Decimal `json:"dailyTransferLimit"`
}

// IsActive reports whether the account may be debited or credited.
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// AllowsOverdraftBelow reports whether a projected balance is acceptable for
// this account. Credit accounts have no floor; all others are rejected once
// the projection reaches the floor or goes under it.
func (a *Account) AllowsOverdraftBelow(projected, floor decimal.Decimal) bool {
	if a.Type == AccountTypeCredit {
		return true
	}
	return projected.GreaterThan(floor)
}
