package service

import (
	"testing"

	"qa-banking-sandbox/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPolicy_Commission(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name     string
		amount   string
		internal bool
		expected string
	}{
		{"internal is free", "15000", true, "0"},
		{"internal large is free", "1000000", true, "0"},
		{"external above minimum", "15000", false, "112.5"},
		{"external at minimum boundary", "6000", false, "45"},
		{"external below minimum uses floor", "2000", false, "45"},
		{"external tiny uses floor", "1", false, "45"},
		{"external rounds to 2 places", "49990", false, "374.93"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee := policy.Commission(decimal.RequireFromString(tt.amount), tt.internal)
			assert.True(t, fee.Equal(decimal.RequireFromString(tt.expected)),
				"got %s, want %s", fee, tt.expected)
		})
	}
}

func TestPolicyFromConfig(t *testing.T) {
	policy := PolicyFromConfig(config.BankConfig{
		OverdraftFloor:    -10000,
		CommissionRate:    0.01,
		CommissionMinimum: 20,
		InternalBankCode:  "044525225",
		ExternalBankCode:  "040173604",
	})

	assert.True(t, policy.OverdraftFloor.Equal(decimal.NewFromInt(-10000)))
	assert.True(t, policy.Commission(decimal.NewFromInt(5000), false).Equal(decimal.NewFromInt(50)))
	assert.True(t, policy.Commission(decimal.NewFromInt(100), false).Equal(decimal.NewFromInt(20)))
	assert.Equal(t, "044525225", policy.InternalBankCode)
}
