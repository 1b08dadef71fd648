package service

import (
	"errors"
	"go-atm-ledger/logger"
	"go-atm-ledger/model"
	"go-atm-ledger/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidAmount     = errors.New("amount must not be negative")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// AtmService implements the account ledger operations on top of the
// account repository. Failed operations leave the store untouched.
type AtmService struct {
	repo repository.IAccountRepository
}

func NewAtmService(repo repository.IAccountRepository) *AtmService {
	return &AtmService{repo: repo}
}

// RegisterAccount opens a new account under the composite (card, pin) key
// with an empty transaction history. The initial balance is stored as
// given; only duplicate keys are rejected.
func (s *AtmService) RegisterAccount(card, pin uint, ownerName string, initialBalance float64) (*model.Account, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"card_number": card,
		"owner_name":  ownerName,
	})
	log.Info("Registering account")

	account := &model.Account{
		CardNumber: card,
		PIN:        pin,
		OwnerName:  ownerName,
		Balance:    initialBalance,
	}

	if err := s.repo.CreateAccount(account); err != nil {
		return nil, err
	}
	return account, nil
}

// CheckBalance returns the current balance for the given key.
func (s *AtmService) CheckBalance(card, pin uint) (float64, error) {
	account, err := s.repo.GetAccount(model.CardKey{CardNumber: card, PIN: pin})
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

// DepositCash increases the balance by amount and appends one transaction
// record. Negative amounts are rejected before any lookup.
func (s *AtmService) DepositCash(card, pin uint, amount float64) (*model.Account, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"card_number": card,
		"amount":      amount,
	})

	if amount < 0 {
		return nil, ErrInvalidAmount
	}

	key := model.CardKey{CardNumber: card, PIN: pin}
	account, err := s.repo.GetAccount(key)
	if err != nil {
		return nil, err
	}

	newBalance := account.Balance + amount
	if err := s.repo.UpdateBalance(key, newBalance); err != nil {
		return nil, err
	}
	record := model.NewTransactionRecord(model.TransactionDeposit, amount, newBalance)
	if err := s.repo.AppendTransaction(key, record); err != nil {
		return nil, err
	}

	account.Balance = newBalance
	log.WithField("balance", newBalance).Info("Deposit completed")
	return account, nil
}

// WithdrawCash decreases the balance by amount and appends one transaction
// record. The balance never goes negative: withdrawing more than the
// current balance fails with ErrInsufficientFunds, withdrawing exactly the
// balance is allowed.
func (s *AtmService) WithdrawCash(card, pin uint, amount float64) (*model.Account, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"card_number": card,
		"amount":      amount,
	})

	if amount < 0 {
		return nil, ErrInvalidAmount
	}

	key := model.CardKey{CardNumber: card, PIN: pin}
	account, err := s.repo.GetAccount(key)
	if err != nil {
		return nil, err
	}

	if amount > account.Balance {
		log.WithField("balance", account.Balance).Info("Withdrawal exceeds balance")
		return nil, ErrInsufficientFunds
	}

	newBalance := account.Balance - amount
	if err := s.repo.UpdateBalance(key, newBalance); err != nil {
		return nil, err
	}
	record := model.NewTransactionRecord(model.TransactionWithdrawal, amount, newBalance)
	if err := s.repo.AppendTransaction(key, record); err != nil {
		return nil, err
	}

	account.Balance = newBalance
	log.WithField("balance", newBalance).Info("Withdrawal completed")
	return account, nil
}
