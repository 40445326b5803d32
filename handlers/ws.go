package handlers

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"stockfolio/config"
	"stockfolio/market"
	"stockfolio/models"
)

// PriceUpdate is one simulated tick pushed over the websocket.
type PriceUpdate struct {
	Symbol        string    `json:"symbol"`
	Price         float64   `json:"price"`
	ChangePercent float64   `json:"change_percent"`
	Timestamp     time.Time `json:"timestamp"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamPrices upgrades the connection and pushes a random-walk tick
// for one seeded symbol every second. The walk starts from the stored
// catalog prices and moves at most ±2% per tick.
func StreamPrices(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		config.Log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	var stocks []models.Stock
	if err := config.DB.Select("symbol", "price").Find(&stocks).Error; err != nil || len(stocks) == 0 {
		conn.WriteJSON(gin.H{"error": "no stocks available"})
		return
	}

	prices := make(map[string]float64, len(stocks))
	symbols := make([]string, 0, len(stocks))
	for _, s := range stocks {
		prices[s.Symbol] = s.Price
		symbols = append(symbols, s.Symbol)
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		symbol := symbols[rand.Intn(len(symbols))]
		changePercent := (rand.Float64() - 0.5) * 4
		newPrice := prices[symbol] * (1 + changePercent/100)
		prices[symbol] = newPrice

		update := PriceUpdate{
			Symbol:        symbol,
			Price:         market.Round2(newPrice),
			ChangePercent: market.Round2(changePercent),
			Timestamp:     time.Now(),
		}
		if err := conn.WriteJSON(update); err != nil {
			return
		}
	}
}
