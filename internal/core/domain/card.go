package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CardVariant classifies a card product.
type CardVariant string

const (
	CardVariantDebit   CardVariant = "debit"
	CardVariantCredit  CardVariant = "credit"
	CardVariantVirtual CardVariant = "virtual"
)

// CardStatus represents the operational state of a card.
type CardStatus string

const (
	CardStatusActive  CardStatus = "active"
	CardStatusBlocked CardStatus = "blocked"
	CardStatusVirtual CardStatus = "virtual"
)

// Card is static reference data tied to an account. Read-only: there is no
// issuance flow in the sandbox.
type Card struct {
	ID            string          `json:"id"`
	AccountID     string          `json:"accountId"`
	Brand         string          `json:"brand"`
	Variant       CardVariant     `json:"variant"`
	Number        string          `json:"number"`
	HolderName    string          `json:"holderName"`
	ExpiresAt     time.Time       `json:"expiresAt"`
	Status        CardStatus      `json:"status"`
	Theme         string          `json:"theme"`
	SpendingLimit decimal.Decimal `json:"spendingLimit"`
}
