package models

import (
	"gorm.io/gorm"
)

// Holding is a user's position in one symbol. Quantity never goes
// negative; the row is deleted when a sell empties it.
type Holding struct {
	gorm.Model
	UserID   uint    `gorm:"index:idx_user_stock,unique;not null" json:"user_id"`
	Symbol   string  `gorm:"index:idx_user_stock,unique;not null" json:"symbol"`
	Name     string  `json:"name"`
	Quantity int     `gorm:"not null" json:"quantity"`
	AvgPrice float64 `gorm:"not null" json:"avg_price"`
}

type Watchlist struct {
	gorm.Model
	UserID uint   `gorm:"index:idx_user_watch,unique;not null" json:"user_id"`
	Symbol string `gorm:"index:idx_user_watch,unique;not null" json:"symbol"`
	Name   string `json:"name"`
}
