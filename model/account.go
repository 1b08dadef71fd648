package model

import "time"

// CardKey is the composite lookup key for an account. Both fields are fully
// specified at lookup time, so the struct is usable directly as a map key.
type CardKey struct {
	CardNumber uint `json:"card_number"`
	PIN        uint `json:"pin"`
}

type Account struct {
	CardNumber uint      `json:"card_number"`
	PIN        uint      `json:"-"` // Never exposed in JSON output.
	OwnerName  string    `json:"owner_name"`
	Balance    float64   `json:"balance"`
	CreatedAt  time.Time `json:"created_at"`
}

// Key returns the composite store key for this account.
func (a *Account) Key() CardKey {
	return CardKey{CardNumber: a.CardNumber, PIN: a.PIN}
}
