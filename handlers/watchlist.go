package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stockfolio/config"
	"stockfolio/models"
)

type WatchlistInput struct {
	Symbol string `json:"symbol" binding:"required"`
	Name   string `json:"name"`
}

func GetWatchlist(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var entries []models.Watchlist
	if err := config.DB.Where("user_id = ?", userID).Order("symbol").Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watchlist"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

func AddToWatchlist(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var input WatchlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	symbol := strings.ToUpper(input.Symbol)

	var existing models.Watchlist
	err := config.DB.Where("user_id = ? AND symbol = ?", userID, symbol).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock already in watchlist"})
		return
	}
	if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	entry := models.Watchlist{UserID: userID, Symbol: symbol, Name: input.Name}
	if err := config.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to watchlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock added to watchlist", "entry": entry})
}

func RemoveFromWatchlist(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	symbol := strings.ToUpper(c.Param("symbol"))

	if err := config.DB.Unscoped().
		Where("user_id = ? AND symbol = ?", userID, symbol).
		Delete(&models.Watchlist{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from watchlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock removed from watchlist"})
}
