package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stockfolio/config"
	"stockfolio/models"
)

// IndexQuote is one market index snapshot.
type IndexQuote struct {
	Name          string  `json:"name"`
	Value         float64 `json:"value"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}

// GetIndices returns the headline index quotes. The catalog is static
// seeded data, so these are fixed snapshots to match.
func GetIndices(c *gin.Context) {
	indices := []IndexQuote{
		{Name: "NIFTY 50", Value: 19865.20, Change: 245.30, ChangePercent: 1.25},
		{Name: "SENSEX", Value: 66589.93, Change: 503.27, ChangePercent: 0.76},
		{Name: "NIFTY BANK", Value: 44732.85, Change: -123.45, ChangePercent: -0.28},
		{Name: "NIFTY IT", Value: 30456.70, Change: 892.15, ChangePercent: 3.02},
	}
	c.JSON(http.StatusOK, indices)
}

// GetTrending returns gainers, losers or most active stocks.
func GetTrending(c *gin.Context) {
	trendType := c.DefaultQuery("type", "gainers")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 50 {
		limit = 10
	}

	order := "change_percent DESC"
	switch trendType {
	case "losers":
		order = "change_percent ASC"
	case "active":
		order = "volume DESC"
	}

	var stocks []models.Stock
	if err := config.DB.Order(order).Limit(limit).Find(&stocks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trending stocks"})
		return
	}

	c.JSON(http.StatusOK, stocks)
}
