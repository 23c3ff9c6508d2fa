package service

import (
	"context"
	"fmt"
	"time"

	"qa-banking-sandbox/internal/core/domain"
	"qa-banking-sandbox/internal/core/ports"
	"qa-banking-sandbox/pkg/apperror"

	"github.com/rs/zerolog"
)

const (
	defaultTransferDescription = "Перевод средств"
	incomingTransferDesc       = "Перевод от клиента"
	commissionDescription      = "Комиссия за перевод"
	topUpDescription           = "Пополнение счета"
	externalCounterparty       = "Внешний получатель"
	newRecipientName           = "Новый получатель"
	bankCounterparty           = "Sprintest Bank"
)

// LedgerServiceImpl implements ports.LedgerService.
type LedgerServiceImpl struct {
	accounts   ports.AccountRepository
	txns       ports.TransactionRepository
	recipients ports.RecipientRepository
	transactor ports.Transactor
	policy     Policy
	log        zerolog.Logger
	now        func() time.Time
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	accounts ports.AccountRepository,
	txns ports.TransactionRepository,
	recipients ports.RecipientRepository,
	transactor ports.Transactor,
	policy Policy,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		accounts:   accounts,
		txns:       txns,
		recipients: recipients,
		transactor: transactor,
		policy:     policy,
		log:        log,
		now:        time.Now,
	}
}

// CreateTransfer debits the source account, charges commission on external
// transfers, credits the destination when it is a known account, and upserts
// the recipient record. All validation happens before the first mutation, so
// a failure leaves every balance untouched.
//
// The daily transfer limit is checked against this transfer's amount only,
// not cumulative usage for the day.
func (s *LedgerServiceImpl) CreateTransfer(ctx context.Context, req ports.TransferRequest) (*ports.TransferResult, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	from, err := s.accounts.GetByID(ctx, req.FromAccountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load source account: %w", err))
	}
	if from == nil {
		return nil, apperror.ErrAccountNotFound()
	}
	if !from.IsActive() {
		return nil, apperror.ErrAccountRestricted()
	}
	if req.Amount.Sign() <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.Amount.GreaterThan(from.DailyTransferLimit) {
		return nil, apperror.ErrLimitExceeded()
	}
	if !from.AllowsOverdraftBelow(from.Balance.Sub(req.Amount), s.policy.OverdraftFloor) {
		return nil, apperror.ErrInsufficientFunds()
	}

	to, err := s.accounts.GetByNumber(ctx, req.ToAccountNumber)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("resolve destination: %w", err))
	}
	isInternal := to != nil

	amount := req.Amount.Round(2)
	commission := s.policy.Commission(amount, isInternal)
	totalDebit := amount.Add(commission)

	// The floor check repeats with commission included in the debit total.
	if !from.AllowsOverdraftBelow(from.Balance.Sub(totalDebit), s.policy.OverdraftFloor) {
		return nil, apperror.ErrInsufficientFunds()
	}

	timestamp := s.now().UTC()
	description := req.Description
	if description == "" {
		description = defaultTransferDescription
	}
	counterparty := externalCounterparty
	if isInternal {
		counterparty = to.HolderName
	}

	running := from.Balance.Sub(amount).Round(2)
	debit := domain.Transaction{
		ID:           domain.NewID("txn"),
		AccountID:    from.ID,
		Type:         domain.TransactionDebit,
		Amount:       amount,
		Currency:     from.Currency,
		Description:  description,
		Category:     domain.CategoryTransfer,
		Counterparty: counterparty,
		BalanceAfter: running,
		CreatedAt:    timestamp,
		Reference:    domain.NewReference(),
	}
	if err := s.txns.Append(ctx, tx, &debit); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append debit: %w", err))
	}

	var fee *domain.Transaction
	if commission.Sign() > 0 {
		running = running.Sub(commission).Round(2)
		fee = &domain.Transaction{
			ID:           domain.NewID("txn"),
			AccountID:    from.ID,
			Type:         domain.TransactionDebit,
			Amount:       commission,
			Currency:     from.Currency,
			Description:  commissionDescription,
			Category:     domain.CategoryFee,
			Counterparty: bankCounterparty,
			BalanceAfter: running,
			CreatedAt:    timestamp,
			Reference:    debit.Reference,
		}
		if err := s.txns.Append(ctx, tx, fee); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("append fee: %w", err))
		}
	}

	if err := s.accounts.UpdateBalance(ctx, tx, from.ID, running); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("debit source: %w", err))
	}

	if isInternal {
		// Re-fetch: a transfer to the holder's own number must see the
		// balance the debit just wrote.
		to, err = s.accounts.GetByNumber(ctx, req.ToAccountNumber)
		if err != nil || to == nil {
			return nil, apperror.InternalError(fmt.Errorf("reload destination: %w", err))
		}
		credited := to.Balance.Add(amount).Round(2)
		if err := s.accounts.UpdateBalance(ctx, tx, to.ID, credited); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("credit destination: %w", err))
		}
		creditDesc := req.Description
		if creditDesc == "" {
			creditDesc = incomingTransferDesc
		}
		credit := domain.Transaction{
			ID:           domain.NewID("txn"),
			AccountID:    to.ID,
			Type:         domain.TransactionCredit,
			Amount:       amount,
			Currency:     to.Currency,
			Description:  creditDesc,
			Category:     domain.CategoryTransfer,
			Counterparty: from.HolderName,
			BalanceAfter: credited,
			CreatedAt:    timestamp,
			Reference:    debit.Reference,
		}
		if err := s.txns.Append(ctx, tx, &credit); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("append credit: %w", err))
		}
	}

	if err := s.upsertRecipient(ctx, tx, req.ToAccountNumber, to, timestamp); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("upsert recipient: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit: %w", err))
	}

	s.log.Info().
		Str("tx_id", debit.ID).
		Str("from_account", from.ID).
		Str("to_account_number", req.ToAccountNumber).
		Str("amount", amount.String()).
		Str("commission", commission.String()).
		Bool("internal", isInternal).
		Msg("transfer created")

	return &ports.TransferResult{
		Transfer:     debit,
		Fee:          fee,
		Commission:   commission,
		TotalDebited: totalDebit.Round(2),
		IsInternal:   isInternal,
	}, nil
}

// CreateTopUp credits the account and appends one topup transaction carrying
// the account's own currency.
func (s *LedgerServiceImpl) CreateTopUp(ctx context.Context, req ports.TopUpRequest) (*domain.Transaction, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	account, err := s.accounts.GetByID(ctx, req.AccountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrAccountNotFound()
	}
	if !account.IsActive() {
		return nil, apperror.ErrAccountRestricted()
	}
	if req.Amount.Sign() <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	amount := req.Amount.Round(2)
	balance := account.Balance.Add(amount).Round(2)
	if err := s.accounts.UpdateBalance(ctx, tx, account.ID, balance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("credit account: %w", err))
	}

	description := req.Description
	if description == "" {
		description = topUpDescription
	}

	credit := domain.Transaction{
		ID:           domain.NewID("txn"),
		AccountID:    account.ID,
		Type:         domain.TransactionCredit,
		Amount:       amount,
		Currency:     account.Currency,
		Description:  description,
		Category:     domain.CategoryTopup,
		Counterparty: bankCounterparty,
		BalanceAfter: balance,
		CreatedAt:    s.now().UTC(),
		Reference:    domain.NewReference(),
	}
	if err := s.txns.Append(ctx, tx, &credit); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append topup: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit: %w", err))
	}

	s.log.Info().
		Str("tx_id", credit.ID).
		Str("account", account.ID).
		Str("amount", amount.String()).
		Msg("topup created")

	return &credit, nil
}

// upsertRecipient creates a payee record on first transfer to an account
// number and only refreshes LastPaymentAt on repeats.
func (s *LedgerServiceImpl) upsertRecipient(ctx context.Context, tx ports.Tx, accountNumber string, to *domain.Account, at time.Time) error {
	existing, err := s.recipients.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		return err
	}
	if existing != nil {
		return s.recipients.TouchLastPayment(ctx, tx, existing.ID, at)
	}

	rec := domain.Recipient{
		ID:            domain.NewID("rec"),
		Name:          newRecipientName,
		AccountNumber: accountNumber,
		BankCode:      s.policy.ExternalBankCode,
		Type:          domain.RecipientExternal,
		LastPaymentAt: &at,
	}
	if to != nil {
		rec.Name = to.HolderName
		rec.BankCode = s.policy.InternalBankCode
		rec.Type = domain.RecipientInternal
	}
	return s.recipients.Create(ctx, tx, &rec)
}
