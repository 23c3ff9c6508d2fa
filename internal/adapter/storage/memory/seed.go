package memory

import (
	"time"

	"qa-banking-sandbox/internal/core/domain"

	"github.com/shopspring/decimal"
)

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func timePtr(s string) *time.Time {
	t := mustTime(s)
	return &t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// seed loads the demo dataset the sandbox ships with.
func (s *Store) seed() {
	for _, a := range seedAccounts() {
		s.Accounts.Add(a)
	}
	for _, t := range seedTransactions() {
		clone := t
		s.Transactions.entries = append(s.Transactions.entries, clone)
	}
	for _, r := range seedRecipients() {
		clone := r
		s.Recipients.recipients = append(s.Recipients.recipients, clone)
	}
	for _, c := range seedCards() {
		s.Cards.Add(c)
	}
	for _, r := range seedProductRequests() {
		clone := r
		s.Requests.requests = append(s.Requests.requests, clone)
	}
}

func seedAccounts() []*domain.Account {
	return []*domain.Account{
		{
			ID:                 "acc-001",
			HolderName:         "Александра Власова",
			AccountNumber:      "40817810500010000001",
			Type:               domain.AccountTypeChecking,
			Balance:            dec("154230.45"),
			Currency:           domain.CurrencyRUB,
			Status:             domain.AccountStatusActive,
			CreatedAt:          mustTime("2023-02-15T09:12:00Z"),
			DailyTransferLimit: dec("300000"),
		},
		{
			ID:                 "acc-002",
			HolderName:         "Александра Власова",
			AccountNumber:      "42301810000020000002",
			Type:               domain.AccountTypeSavings,
			Balance:            dec("89250.00"),
			Currency:           domain.CurrencyRUB,
			Status:             domain.AccountStatusActive,
			CreatedAt:          mustTime("2022-11-01T08:00:00Z"),
			DailyTransferLimit: dec("500000"),
		},
		{
			ID:                 "acc-003",
			HolderName:         "Sprintest Studio",
			AccountNumber:      "40702810200030000003",
			Type:               domain.AccountTypeChecking,
			Balance:            dec("21500.78"),
			Currency:           domain.CurrencyUSD,
			Status:             domain.AccountStatusActive,
			CreatedAt:          mustTime("2024-05-09T10:30:00Z"),
			DailyTransferLimit: dec("100000"),
		},
		{
			ID:                 "acc-004",
			HolderName:         "Sprintest Studio",
			AccountNumber:      "45502810200030000004",
			Type:               domain.AccountTypeCredit,
			Balance:            dec("-32500.50"),
			Currency:           domain.CurrencyRUB,
			Status:             domain.AccountStatusActive,
			CreatedAt:          mustTime("2024-01-20T07:45:00Z"),
			DailyTransferLimit: dec("150000"),
		},
	}
}

func seedTransactions() []*domain.Transaction {
	return []*domain.Transaction{
		{
			ID:           "txn-1001",
			AccountID:    "acc-001",
			Type:         domain.TransactionCredit,
			Amount:       dec("120000"),
			Currency:     domain.CurrencyRUB,
			Description:  "Зарплата за январь",
			Category:     domain.CategorySalary,
			Counterparty: "Sprintest LLC",
			BalanceAfter: dec("154230.45"),
			CreatedAt:    mustTime("2024-01-25T12:05:00Z"),
			Reference:    "SAL-2024-01",
		},
		{
			ID:           "txn-1002",
			AccountID:    "acc-001",
			Type:         domain.TransactionDebit,
			Amount:       dec("8450.50"),
			Currency:     domain.CurrencyRUB,
			Description:  "Оплата аренды",
			Category:     domain.CategoryPayment,
			Counterparty: "ООО \"Мегаполис\"",
			BalanceAfter: dec("145779.95"),
			CreatedAt:    mustTime("2024-02-01T08:30:00Z"),
			Reference:    "INV-5840",
		},
		{
			ID:           "txn-1003",
			AccountID:    "acc-001",
			Type:         domain.TransactionDebit,
			Amount:       dec("1250"),
			Currency:     domain.CurrencyRUB,
			Description:  "Перевод на накопительный счет",
			Category:     domain.CategoryTransfer,
			Counterparty: "Накопительный счет",
			BalanceAfter: dec("144529.95"),
			CreatedAt:    mustTime("2024-02-05T14:15:00Z"),
			Reference:    "TRF-8845",
		},
		{
			ID:           "txn-1101",
			AccountID:    "acc-002",
			Type:         domain.TransactionCredit,
			Amount:       dec("3500"),
			Currency:     domain.CurrencyRUB,
			Description:  "Перевод с текущего счета",
			Category:     domain.CategoryTransfer,
			Counterparty: "Текущий счет",
			BalanceAfter: dec("90500"),
			CreatedAt:    mustTime("2024-02-05T14:17:00Z"),
			Reference:    "TRF-8845",
		},
		{
			ID:           "txn-1201",
			AccountID:    "acc-003",
			Type:         domain.TransactionDebit,
			Amount:       dec("1800"),
			Currency:     domain.CurrencyUSD,
			Description:  "Оплата подписки SaaS",
			Category:     domain.CategoryPayment,
			Counterparty: "Notion Labs",
			BalanceAfter: dec("19700.78"),
			CreatedAt:    mustTime("2024-03-02T09:00:00Z"),
			Reference:    "SUB-202403",
		},
		{
			ID:           "txn-1202",
			AccountID:    "acc-003",
			Type:         domain.TransactionCredit,
			Amount:       dec("5000"),
			Currency:     domain.CurrencyUSD,
			Description:  "Поступление от клиента",
			Category:     domain.CategoryPayment,
			Counterparty: "Globex LTD",
			BalanceAfter: dec("24700.78"),
			CreatedAt:    mustTime("2024-03-10T11:20:00Z"),
			Reference:    "INV-9087",
		},
		{
			ID:           "txn-1301",
			AccountID:    "acc-004",
			Type:         domain.TransactionDebit,
			Amount:       dec("1500.50"),
			Currency:     domain.CurrencyRUB,
			Description:  "Погашение кредита",
			Category:     domain.CategoryPayment,
			Counterparty: "Sprintest Bank",
			BalanceAfter: dec("-31000"),
			CreatedAt:    mustTime("2024-02-28T16:40:00Z"),
			Reference:    "CRD-202402",
		},
	}
}

func seedRecipients() []*domain.Recipient {
	return []*domain.Recipient{
		{
			ID:            "rec-001",
			Name:          "ООО \"Мегаполис\"",
			AccountNumber: "40702810000050000001",
			BankCode:      "044525974",
			Type:          domain.RecipientExternal,
			LastPaymentAt: timePtr("2024-02-01T08:30:00Z"),
		},
		{
			ID:            "rec-002",
			Name:          "Notion Labs",
			AccountNumber: "40802810000060000002",
			BankCode:      "026009593",
			Type:          domain.RecipientExternal,
			LastPaymentAt: timePtr("2024-03-02T09:00:00Z"),
		},
		{
			ID:            "rec-003",
			Name:          "Накопительный счет",
			AccountNumber: "42301810000020000002",
			BankCode:      "044525225",
			Type:          domain.RecipientInternal,
			LastPaymentAt: timePtr("2024-02-05T14:17:00Z"),
		},
		{
			ID:            "rec-004",
			Name:          "Текущий счет Sprintest",
			AccountNumber: "40817810500010000001",
			BankCode:      "044525225",
			Type:          domain.RecipientInternal,
			LastPaymentAt: timePtr("2024-03-18T10:15:00Z"),
		},
		{
			ID:            "rec-005",
			Name:          "Счет Sprintest Studio (USD)",
			AccountNumber: "40702810200030000003",
			BankCode:      "044525225",
			Type:          domain.RecipientInternal,
			LastPaymentAt: timePtr("2024-03-10T11:20:00Z"),
		},
		{
			ID:            "rec-006",
			Name:          "Кредитный счет Sprintest",
			AccountNumber: "45502810200030000004",
			BankCode:      "044525225",
			Type:          domain.RecipientInternal,
			LastPaymentAt: timePtr("2024-03-01T09:45:00Z"),
		},
	}
}

func seedCards() []*domain.Card {
	return []*domain.Card{
		{
			ID:            "card-001",
			AccountID:     "acc-001",
			Brand:         "Sprintest Black",
			Variant:       domain.CardVariantDebit,
			Number:        "5264 9200 4412 9801",
			HolderName:    "Александра Власова",
			ExpiresAt:     mustTime("2027-09-01T00:00:00Z"),
			Status:        domain.CardStatusActive,
			Theme:         "emerald",
			SpendingLimit: dec("450000"),
		},
		{
			ID:            "card-002",
			AccountID:     "acc-001",
			Brand:         "Sprintest Travel",
			Variant:       domain.CardVariantCredit,
			Number:        "5168 3200 1188 4410",
			HolderName:    "Александра Власова",
			ExpiresAt:     mustTime("2026-02-01T00:00:00Z"),
			Status:        domain.CardStatusActive,
			Theme:         "violet",
			SpendingLimit: dec("600000"),
		},
		{
			ID:            "card-003",
			AccountID:     "acc-003",
			Brand:         "Sprintest Business",
			Variant:       domain.CardVariantDebit,
			Number:        "5532 9001 7721 0042",
			HolderName:    "Sprintest Studio",
			ExpiresAt:     mustTime("2028-04-01T00:00:00Z"),
			Status:        domain.CardStatusActive,
			Theme:         "amber",
			SpendingLimit: dec("1200000"),
		},
	}
}

func seedProductRequests() []*domain.ProductRequest {
	return []*domain.ProductRequest{
		{
			ID:               "req-001",
			AccountID:        "acc-001",
			ProductType:      domain.ProductTypeCard,
			ProductName:      "Sprintest Premium Black",
			SubmittedAt:      mustTime("2024-03-20T10:00:00Z"),
			Status:           domain.RequestStatusProcessing,
			EstimatedReadyAt: mustTime("2024-04-02T09:00:00Z"),
			Note:             "Ускоренная выдача для зарплатного проекта",
		},
	}
}
