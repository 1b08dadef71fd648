package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TransactionKind is the human-readable label used in ledger lines.
type TransactionKind string

const (
	TransactionDeposit    TransactionKind = "Deposit"
	TransactionWithdrawal TransactionKind = "Withdrawal"
)

// TransactionRecord describes one deposit or withdrawal event and the
// balance it resulted in. Records are append-only and never mutated.
type TransactionRecord struct {
	ID        uuid.UUID       `json:"id"`
	Kind      TransactionKind `json:"kind"`
	Amount    float64         `json:"amount"`
	Balance   float64         `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewTransactionRecord builds a record with a fresh trace ID.
func NewTransactionRecord(kind TransactionKind, amount, balance float64) TransactionRecord {
	return TransactionRecord{
		ID:        uuid.New(),
		Kind:      kind,
		Amount:    amount,
		Balance:   balance,
		CreatedAt: time.Now(),
	}
}

// String renders the ledger line for this record. Amounts always carry two
// decimal places and a leading dollar sign.
func (r TransactionRecord) String() string {
	return fmt.Sprintf("%s - Amount: $%.2f, Updated Balance: $%.2f", r.Kind, r.Amount, r.Balance)
}
