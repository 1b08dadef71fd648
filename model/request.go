// file: model/request.go

package model

// RegisterAccountRequest defines the payload for opening a new account.
// It includes validation tags to ensure data integrity at the entry point.
// InitialBalance deliberately carries no sign constraint: registration
// accepts whatever opening balance the host supplies.
type RegisterAccountRequest struct {
	CardNumber     uint    `json:"card_number" validate:"required"`
	PIN            uint    `json:"pin" validate:"required"`
	OwnerName      string  `json:"owner_name" validate:"required,min=1,max=100"`
	InitialBalance float64 `json:"initial_balance"`
}

// CashRequest defines the payload for a deposit or a withdrawal.
type CashRequest struct {
	CardNumber uint    `json:"card_number" validate:"required"`
	PIN        uint    `json:"pin" validate:"required"`
	Amount     float64 `json:"amount" validate:"gte=0"`
}

// LookupRequest defines the payload for balance checks and ledger printing.
type LookupRequest struct {
	CardNumber uint `json:"card_number" validate:"required"`
	PIN        uint `json:"pin" validate:"required"`
}
