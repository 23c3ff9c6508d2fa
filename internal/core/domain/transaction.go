package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionDirection is the side of the ledger an entry falls on.
type TransactionDirection string

const (
	TransactionDebit  TransactionDirection = "debit"
	TransactionCredit TransactionDirection = "credit"
)

// TransactionCategory classifies the business meaning of an entry.
type TransactionCategory string

const (
	CategoryTransfer TransactionCategory = "transfer"
	CategoryPayment  TransactionCategory = "payment"
	CategoryCard     TransactionCategory = "card"
	CategorySalary   TransactionCategory = "salary"
	CategoryFee      TransactionCategory = "fee"
	CategoryRefund   TransactionCategory = "refund"
	CategoryTopup    TransactionCategory = "topup"
)

// Transaction is an immutable ledger entry. A transfer produces 2-3 linked
// entries (debit, optional fee, optional counterparty credit) sharing one
// reference code. BalanceAfter snapshots the account balance at append time.
type Transaction struct {
	ID           string               `json:"id"`
	AccountID    string               `json:"accountId"`
	Type         TransactionDirection `json:"type"`
	Amount       decimal.Decimal      `json:"amount"`
	Currency     Currency             `json:"currency"`
	Description  string               `json:"description"`
	Category     TransactionCategory  `json:"category"`
	Counterparty string               `json:"counterparty"`
	BalanceAfter decimal.Decimal      `json:"balanceAfter"`
	CreatedAt    time.Time            `json:"createdAt"`
	Reference    string               `json:"reference"`
}
