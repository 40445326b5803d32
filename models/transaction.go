package models

import (
	"gorm.io/gorm"
)

// Transaction types.
const (
	TxBuy    = "BUY"
	TxSell   = "SELL"
	TxCredit = "CREDIT"
	TxDebit  = "DEBIT"
)

// Transaction statuses.
const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// Transaction is an append-only ledger entry. One row per trade or
// wallet operation, never updated after insert.
type Transaction struct {
	gorm.Model
	UserID      uint    `gorm:"index;not null;uniqueIndex:idx_user_idem" json:"user_id"`
	Reference   string  `gorm:"uniqueIndex;not null" json:"reference"`
	Type        string  `gorm:"not null" json:"type"`
	Symbol      string  `json:"symbol,omitempty"`
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	Quantity    int     `json:"quantity,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Total       float64 `gorm:"not null" json:"total"`
	Method      string  `json:"method,omitempty"`
	Status      string  `gorm:"default:'COMPLETED'" json:"status"`

	// Set on wallet operations when the client supplies a key, so a
	// retried request cannot credit or debit twice. Unique per user,
	// not globally: different users may pick the same key.
	IdempotencyKey *string `gorm:"uniqueIndex:idx_user_idem" json:"-"`
}
