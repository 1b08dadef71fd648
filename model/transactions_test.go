package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionRecord_String(t *testing.T) {
	t.Run("deposit line", func(t *testing.T) {
		record := NewTransactionRecord(TransactionDeposit, 40000.00, 40099.90)
		assert.Equal(t, "Deposit - Amount: $40000.00, Updated Balance: $40099.90", record.String())
	})

	t.Run("withdrawal line", func(t *testing.T) {
		record := NewTransactionRecord(TransactionWithdrawal, 200.40, 99.90)
		assert.Equal(t, "Withdrawal - Amount: $200.40, Updated Balance: $99.90", record.String())
	})

	t.Run("amounts always render two decimals", func(t *testing.T) {
		record := NewTransactionRecord(TransactionDeposit, 5, 5)
		assert.Equal(t, "Deposit - Amount: $5.00, Updated Balance: $5.00", record.String())
	})
}

func TestNewTransactionRecord_AssignsTraceID(t *testing.T) {
	a := NewTransactionRecord(TransactionDeposit, 1, 1)
	b := NewTransactionRecord(TransactionDeposit, 1, 2)

	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.CreatedAt.IsZero())
}
