package models

import (
	"gorm.io/gorm"
)

// StartingBalance is credited to every new account.
const StartingBalance = 1000.0

type User struct {
	gorm.Model
	Name     string  `json:"name"`
	Email    string  `gorm:"uniqueIndex;not null" json:"email"`
	Password string  `gorm:"not null" json:"-"`
	Balance  float64 `gorm:"not null;default:1000" json:"balance"`

	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	PanCard     string `json:"pan_card,omitempty"`
	BankAccount string `json:"bank_account,omitempty"`
}
