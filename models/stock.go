package models

import (
	"time"

	"gorm.io/gorm"
)

type Stock struct {
	gorm.Model
	Symbol        string  `gorm:"uniqueIndex;not null" json:"symbol"`
	Name          string  `gorm:"not null" json:"name"`
	Price         float64 `gorm:"not null" json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	MarketCap     string  `json:"market_cap"`
	Sector        string  `gorm:"index" json:"sector"`
	PE            float64 `json:"pe"`
	Logo          string  `json:"logo"`
	Volume        int64   `json:"volume"`
	High52W       float64 `json:"high_52w"`
	Low52W        float64 `json:"low_52w"`
	Dividend      float64 `json:"dividend"`
	EPS           float64 `json:"eps"`
	BookValue     float64 `json:"book_value"`
}

// MarketData is one daily OHLCV bar for a symbol.
type MarketData struct {
	gorm.Model
	Symbol string    `gorm:"index:idx_symbol_date;not null" json:"symbol"`
	Date   time.Time `gorm:"index:idx_symbol_date;not null" json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

func (MarketData) TableName() string {
	return "market_data"
}
