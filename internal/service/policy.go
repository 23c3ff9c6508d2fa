package service

import (
	"qa-banking-sandbox/config"

	"github.com/shopspring/decimal"
)

// Policy holds the ledger business rules the services apply.
type Policy struct {
	// OverdraftFloor is the minimum balance a non-credit account may reach.
	// A projected balance at or below the floor rejects the debit.
	OverdraftFloor decimal.Decimal
	// CommissionRate applies to transfers leaving the bank.
	CommissionRate decimal.Decimal
	// CommissionMinimum is the fee floor: external commission is
	// max(amount * rate, minimum).
	CommissionMinimum decimal.Decimal
	// Bank codes recorded on recipient records.
	InternalBankCode string
	ExternalBankCode string
}

// PolicyFromConfig builds a Policy from the bank configuration section.
func PolicyFromConfig(cfg config.BankConfig) Policy {
	return Policy{
		OverdraftFloor:    decimal.NewFromFloat(cfg.OverdraftFloor),
		CommissionRate:    decimal.NewFromFloat(cfg.CommissionRate),
		CommissionMinimum: decimal.NewFromFloat(cfg.CommissionMinimum),
		InternalBankCode:  cfg.InternalBankCode,
		ExternalBankCode:  cfg.ExternalBankCode,
	}
}

// DefaultPolicy returns the sandbox defaults: -50000 floor, 0.75% rate with
// a 45 currency-unit minimum.
func DefaultPolicy() Policy {
	return Policy{
		OverdraftFloor:    decimal.NewFromInt(-50000),
		CommissionRate:    decimal.RequireFromString("0.0075"),
		CommissionMinimum: decimal.NewFromInt(45),
		InternalBankCode:  "044525225",
		ExternalBankCode:  "040173604",
	}
}

// Commission computes the fee for a transfer of amount. Internal transfers
// are free; external transfers pay max(amount * rate, minimum), rounded to
// 2 decimal places.
func (p Policy) Commission(amount decimal.Decimal, internal bool) decimal.Decimal {
	if internal {
		return decimal.Zero
	}
	fee := amount.Mul(p.CommissionRate)
	if fee.LessThan(p.CommissionMinimum) {
		fee = p.CommissionMinimum
	}
	return fee.Round(2)
}
