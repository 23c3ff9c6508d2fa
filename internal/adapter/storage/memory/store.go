// Package memory implements the ledger store as process-lifetime in-memory
// collections. The sandbox deliberately has no persistence: state lives for
// the lifetime of the process and resets on restart.
package memory

// Store bundles the in-memory repositories over one dataset.
type Store struct {
	Accounts     *AccountRepo
	Transactions *TransactionRepo
	Recipients   *RecipientRepo
	Cards        *CardRepo
	Requests     *ProductRequestRepo
	Transactor   *Transactor
}

// NewStore creates a store, optionally populated with the demo dataset.
func NewStore(seed bool) *Store {
	s := &Store{
		Accounts:     newAccountRepo(),
		Transactions: newTransactionRepo(),
		Recipients:   newRecipientRepo(),
		Cards:        newCardRepo(),
		Requests:     newProductRequestRepo(),
		Transactor:   NewTransactor(),
	}
	if seed {
		s.seed()
	}
	return s
}
