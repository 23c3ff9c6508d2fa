package domain

import "time"

// RecipientType says whether a saved payee's account number belongs to this
// bank (internal) or an outside one (external).
type RecipientType string

const (
	RecipientInternal RecipientType = "internal"
	RecipientExternal RecipientType = "external"
)

// Recipient is a saved payee keyed by account number. Created on the first
// transfer to a new account number; repeat transfers only refresh
// LastPaymentAt.
type Recipient struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	AccountNumber string        `json:"accountNumber"`
	BankCode      string        `json:"bankCode"`
	Type          RecipientType `json:"type"`
	LastPaymentAt *time.Time    `json:"lastPaymentAt"`
}
