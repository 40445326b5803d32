// Command seed loads the sample stock catalog and generates a year of
// daily bars per symbol, ending at each stock's catalog price.
package main

import (
	"math/rand"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"

	"stockfolio/config"
	"stockfolio/database"
	"stockfolio/market"
	"stockfolio/models"
)

const historyDays = 365

func main() {
	if err := godotenv.Load(); err != nil {
		config.Log.Info("no .env file found, using environment variables")
	}
	defer config.Log.Sync()

	config.InitDB()

	if err := database.Migrate(config.DB); err != nil {
		config.Log.Fatal("failed to migrate models", zap.Error(err))
	}

	for _, stock := range sampleStocks {
		err := config.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "symbol"}},
			UpdateAll: true,
		}).Create(&stock).Error
		if err != nil {
			config.Log.Fatal("failed to seed stock", zap.String("symbol", stock.Symbol), zap.Error(err))
		}
	}
	config.Log.Info("seeded stock catalog", zap.Int("stocks", len(sampleStocks)))

	for _, stock := range sampleStocks {
		var existing int64
		config.DB.Model(&models.MarketData{}).Where("symbol = ?", stock.Symbol).Count(&existing)
		if existing > 0 {
			continue
		}

		bars := generateHistory(stock, historyDays)
		if err := database.CreateInBatches(bars, 100); err != nil {
			config.Log.Fatal("failed to seed market data", zap.String("symbol", stock.Symbol), zap.Error(err))
		}
		config.Log.Info("seeded market data", zap.String("symbol", stock.Symbol), zap.Int("bars", len(bars)))
	}
}

// generateHistory walks prices backwards from the catalog price so the
// most recent close always matches the stock row.
func generateHistory(stock models.Stock, days int) []models.MarketData {
	bars := make([]models.MarketData, days)
	price := stock.Price
	now := time.Now().Truncate(24 * time.Hour)

	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -(days - 1 - i))

		drift := (rand.Float64() - 0.5) * 0.04 // ±2% per day
		open := price * (1 + drift/2)
		high := max(open, price) * (1 + rand.Float64()*0.01)
		low := min(open, price) * (1 - rand.Float64()*0.01)

		volume := stock.Volume/2 + rand.Int63n(stock.Volume+1)

		bars[i] = models.MarketData{
			Symbol: stock.Symbol,
			Date:   date,
			Open:   market.Round2(open),
			High:   market.Round2(high),
			Low:    market.Round2(low),
			Close:  market.Round2(price),
			Volume: volume,
		}

		price = price / (1 + drift)
	}

	return bars
}
