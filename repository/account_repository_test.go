package repository

import (
	"go-atm-ledger/logger"
	"go-atm-ledger/model"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMain runs setup before any tests in this package are executed.
func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newAccount(card, pin uint, name string, balance float64) *model.Account {
	return &model.Account{CardNumber: card, PIN: pin, OwnerName: name, Balance: balance}
}

func TestAccountRepository_CreateAccount(t *testing.T) {
	t.Run("create and read back", func(t *testing.T) {
		repo := NewAccountRepository()

		err := repo.CreateAccount(newAccount(12345678, 1234, "Sam Sepiol", 300.30))
		assert.NoError(t, err)

		key := model.CardKey{CardNumber: 12345678, PIN: 1234}
		account, err := repo.GetAccount(key)
		assert.NoError(t, err)
		assert.Equal(t, "Sam Sepiol", account.OwnerName)
		assert.Equal(t, 300.30, account.Balance)

		// Registration creates the history entry atomically.
		records, err := repo.GetTransactions(key)
		assert.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("duplicate key rejected, first registration unchanged", func(t *testing.T) {
		repo := NewAccountRepository()
		assert.NoError(t, repo.CreateAccount(newAccount(12345678, 1234, "Sam Sepiol", 300.30)))

		err := repo.CreateAccount(newAccount(12345678, 1234, "Someone Else", 10.0))
		assert.ErrorIs(t, err, ErrDuplicateAccount)

		account, err := repo.GetAccount(model.CardKey{CardNumber: 12345678, PIN: 1234})
		assert.NoError(t, err)
		assert.Equal(t, "Sam Sepiol", account.OwnerName)
		assert.Equal(t, 300.30, account.Balance)
	})

	t.Run("same card with different pin is a different key", func(t *testing.T) {
		repo := NewAccountRepository()
		assert.NoError(t, repo.CreateAccount(newAccount(12345678, 1234, "Sam Sepiol", 300.30)))
		assert.NoError(t, repo.CreateAccount(newAccount(12345678, 4321, "Elliot", 10.0)))
	})
}

func TestAccountRepository_GetAccount(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		repo := NewAccountRepository()
		_, err := repo.GetAccount(model.CardKey{CardNumber: 1, PIN: 1})
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("returns a copy", func(t *testing.T) {
		repo := NewAccountRepository()
		assert.NoError(t, repo.CreateAccount(newAccount(12345678, 1234, "Sam Sepiol", 300.30)))

		key := model.CardKey{CardNumber: 12345678, PIN: 1234}
		account, _ := repo.GetAccount(key)
		account.Balance = 0

		fresh, _ := repo.GetAccount(key)
		assert.Equal(t, 300.30, fresh.Balance)
	})
}

func TestAccountRepository_UpdateBalance(t *testing.T) {
	repo := NewAccountRepository()
	key := model.CardKey{CardNumber: 12345678, PIN: 1234}

	assert.ErrorIs(t, repo.UpdateBalance(key, 10), ErrAccountNotFound)

	assert.NoError(t, repo.CreateAccount(newAccount(12345678, 1234, "Sam Sepiol", 300.30)))
	assert.NoError(t, repo.UpdateBalance(key, 99.90))

	account, _ := repo.GetAccount(key)
	assert.Equal(t, 99.90, account.Balance)
}

func TestAccountRepository_Transactions(t *testing.T) {
	repo := NewAccountRepository()
	key := model.CardKey{CardNumber: 12345678, PIN: 1234}

	assert.ErrorIs(t, repo.AppendTransaction(key, model.NewTransactionRecord(model.TransactionDeposit, 1, 1)), ErrAccountNotFound)
	_, err := repo.GetTransactions(key)
	assert.ErrorIs(t, err, ErrAccountNotFound)

	assert.NoError(t, repo.CreateAccount(newAccount(12345678, 1234, "Sam Sepiol", 0)))

	first := model.NewTransactionRecord(model.TransactionDeposit, 10, 10)
	second := model.NewTransactionRecord(model.TransactionWithdrawal, 4, 6)
	assert.NoError(t, repo.AppendTransaction(key, first))
	assert.NoError(t, repo.AppendTransaction(key, second))

	records, err := repo.GetTransactions(key)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, first.ID, records[0].ID)
	assert.Equal(t, second.ID, records[1].ID)
}
