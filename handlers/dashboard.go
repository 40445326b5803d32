package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockfolio/config"
	"stockfolio/models"
)

// GetDashboardStats aggregates the caller's portfolio value, invested
// amount, gain, balance and recent activity in one response.
func GetDashboardStats(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var holdings []HoldingView
	query := `
		SELECT h.*, COALESCE(s.price, h.avg_price) AS current_price,
		       (COALESCE(s.price, h.avg_price) - h.avg_price) * h.quantity AS profit_loss
		FROM holdings h
		LEFT JOIN stocks s ON s.symbol = h.symbol AND s.deleted_at IS NULL
		WHERE h.user_id = ? AND h.deleted_at IS NULL
	`
	if err := config.DB.Raw(query, userID).Scan(&holdings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch portfolio"})
		return
	}

	var portfolioValue, totalInvestment float64
	for _, h := range holdings {
		portfolioValue += h.CurrentPrice * float64(h.Quantity)
		totalInvestment += h.AvgPrice * float64(h.Quantity)
	}
	totalGain := portfolioValue - totalInvestment
	gainPercentage := 0.0
	if totalInvestment > 0 {
		gainPercentage = totalGain / totalInvestment * 100
	}

	var recent []models.Transaction
	config.DB.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(5).
		Find(&recent)

	var watchlistCount int64
	config.DB.Model(&models.Watchlist{}).Where("user_id = ?", userID).Count(&watchlistCount)

	c.JSON(http.StatusOK, gin.H{
		"portfolio_value":     portfolioValue,
		"total_investment":    totalInvestment,
		"total_gain":          totalGain,
		"gain_percentage":     gainPercentage,
		"available_balance":   user.Balance,
		"total_holdings":      len(holdings),
		"watchlist_count":     watchlistCount,
		"recent_transactions": recent,
	})
}
