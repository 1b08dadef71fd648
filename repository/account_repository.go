package repository

import (
	"errors"
	"go-atm-ledger/logger"
	"go-atm-ledger/model"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	// ErrAccountNotFound means no account exists under the given key.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateAccount means the key is already registered.
	ErrDuplicateAccount = errors.New("account already registered")
)

// IAccountRepository defines the contract for account store operations.
type IAccountRepository interface {
	CreateAccount(account *model.Account) error
	GetAccount(key model.CardKey) (*model.Account, error)
	UpdateBalance(key model.CardKey, newBalance float64) error
	AppendTransaction(key model.CardKey, record model.TransactionRecord) error
	GetTransactions(key model.CardKey) ([]model.TransactionRecord, error)
}

// AccountRepository is the in-memory implementation of IAccountRepository.
// It owns two maps keyed by the composite (card number, PIN) pair: the
// accounts themselves and their append-only transaction histories. Every
// registered key has an entry in both maps. State is process-local and not
// safe for concurrent use; the service runs call-and-return on one
// goroutine.
type AccountRepository struct {
	accounts     map[model.CardKey]*model.Account
	transactions map[model.CardKey][]model.TransactionRecord
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts:     make(map[model.CardKey]*model.Account),
		transactions: make(map[model.CardKey][]model.TransactionRecord),
	}
}

// CreateAccount stores a new account and its empty transaction history in
// one step. Fails with ErrDuplicateAccount if the key is taken.
func (r *AccountRepository) CreateAccount(account *model.Account) error {
	log := logger.Log.WithFields(logrus.Fields{
		"card_number": account.CardNumber,
		"owner_name":  account.OwnerName,
	})

	key := account.Key()
	if _, ok := r.accounts[key]; ok {
		log.Info("Account key already registered")
		return ErrDuplicateAccount
	}

	stored := *account
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.accounts[key] = &stored
	r.transactions[key] = []model.TransactionRecord{}

	log.Info("Account stored")
	return nil
}

// GetAccount returns a copy of the stored account so callers cannot mutate
// store state directly.
func (r *AccountRepository) GetAccount(key model.CardKey) (*model.Account, error) {
	account, ok := r.accounts[key]
	if !ok {
		return nil, ErrAccountNotFound
	}
	cp := *account
	return &cp, nil
}

func (r *AccountRepository) UpdateBalance(key model.CardKey, newBalance float64) error {
	account, ok := r.accounts[key]
	if !ok {
		return ErrAccountNotFound
	}
	account.Balance = newBalance
	return nil
}

// AppendTransaction adds a record to the end of the account's history.
func (r *AccountRepository) AppendTransaction(key model.CardKey, record model.TransactionRecord) error {
	if _, ok := r.accounts[key]; !ok {
		return ErrAccountNotFound
	}
	r.transactions[key] = append(r.transactions[key], record)
	return nil
}

// GetTransactions returns the account's history in insertion order, oldest
// first, as a copy.
func (r *AccountRepository) GetTransactions(key model.CardKey) ([]model.TransactionRecord, error) {
	records, ok := r.transactions[key]
	if !ok {
		return nil, ErrAccountNotFound
	}
	out := make([]model.TransactionRecord, len(records))
	copy(out, records)
	return out, nil
}

var _ IAccountRepository = (*AccountRepository)(nil)
