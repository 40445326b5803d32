package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"stockfolio/config"
	"stockfolio/database"
	"stockfolio/models"
)

type BuyInput struct {
	Symbol   string  `json:"symbol" binding:"required"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Price    float64 `json:"price" binding:"required,gt=0"`
}

type SellInput struct {
	Symbol   string  `json:"symbol" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Price    float64 `json:"price" binding:"required,gt=0"`
}

// HoldingView is a holding joined with the current stock price.
type HoldingView struct {
	models.Holding
	CurrentPrice float64 `json:"current_price"`
	ProfitLoss   float64 `json:"profit_loss"`
}

func GetPortfolio(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var holdings []HoldingView
	query := `
		SELECT h.*, COALESCE(s.price, h.avg_price) AS current_price,
		       (COALESCE(s.price, h.avg_price) - h.avg_price) * h.quantity AS profit_loss
		FROM holdings h
		LEFT JOIN stocks s ON s.symbol = h.symbol AND s.deleted_at IS NULL
		WHERE h.user_id = ? AND h.deleted_at IS NULL
		ORDER BY h.symbol
	`
	if err := config.DB.Raw(query, userID).Scan(&holdings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch portfolio"})
		return
	}

	c.JSON(http.StatusOK, holdings)
}

// BuyStock executes a purchase as one transaction: lock the user row,
// check balance, upsert the holding with a quantity-weighted average
// price, debit the balance, append a BUY ledger entry. Either all of
// it lands or none of it does.
func BuyStock(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var input BuyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	totalCost := float64(input.Quantity) * input.Price

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var user models.User
	if err := database.Locked(tx).First(&user, userID).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if user.Balance < totalCost {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient balance"})
		return
	}

	var holding models.Holding
	err := tx.Where("user_id = ? AND symbol = ?", userID, input.Symbol).First(&holding).Error
	switch {
	case err == nil:
		newQuantity := holding.Quantity + input.Quantity
		avgPrice := (holding.AvgPrice*float64(holding.Quantity) + totalCost) / float64(newQuantity)
		updates := map[string]interface{}{"quantity": newQuantity, "avg_price": avgPrice}
		if err := tx.Model(&holding).Updates(updates).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update holding"})
			return
		}
	case err == gorm.ErrRecordNotFound:
		holding = models.Holding{
			UserID:   userID,
			Symbol:   input.Symbol,
			Name:     input.Name,
			Quantity: input.Quantity,
			AvgPrice: input.Price,
		}
		if err := tx.Create(&holding).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create holding"})
			return
		}
	default:
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if err := tx.Model(&user).Update("balance", user.Balance-totalCost).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update balance"})
		return
	}

	transaction := models.Transaction{
		UserID:      userID,
		Reference:   uuid.NewString(),
		Type:        models.TxBuy,
		Symbol:      input.Symbol,
		Name:        input.Name,
		Description: fmt.Sprintf("Stock Purchase - %s", input.Symbol),
		Quantity:    input.Quantity,
		Price:       input.Price,
		Total:       totalCost,
		Status:      models.StatusCompleted,
	}
	if err := tx.Create(&transaction).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record transaction"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Stock purchased successfully",
		"transaction": transaction,
		"new_balance": user.Balance - totalCost,
	})
}

// SellStock mirrors BuyStock: lock the user row, check the holding,
// shrink or delete it, credit the proceeds, append a SELL entry.
// AvgPrice is untouched by sells.
func SellStock(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var input SellInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	totalRevenue := float64(input.Quantity) * input.Price

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var user models.User
	if err := database.Locked(tx).First(&user, userID).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var holding models.Holding
	err := tx.Where("user_id = ? AND symbol = ?", userID, input.Symbol).First(&holding).Error
	if err != nil || holding.Quantity < input.Quantity {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient shares to sell"})
		return
	}

	if holding.Quantity == input.Quantity {
		if err := tx.Unscoped().Delete(&holding).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update holding"})
			return
		}
	} else {
		if err := tx.Model(&holding).Update("quantity", holding.Quantity-input.Quantity).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update holding"})
			return
		}
	}

	if err := tx.Model(&user).Update("balance", user.Balance+totalRevenue).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update balance"})
		return
	}

	transaction := models.Transaction{
		UserID:      userID,
		Reference:   uuid.NewString(),
		Type:        models.TxSell,
		Symbol:      input.Symbol,
		Name:        holding.Name,
		Description: fmt.Sprintf("Stock Sale - %s", input.Symbol),
		Quantity:    input.Quantity,
		Price:       input.Price,
		Total:       totalRevenue,
		Status:      models.StatusCompleted,
	}
	if err := tx.Create(&transaction).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record transaction"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Stock sold successfully",
		"transaction": transaction,
		"new_balance": user.Balance + totalRevenue,
	})
}
