package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"stockfolio/config"
	"stockfolio/database"
	"stockfolio/models"
)

type FundsInput struct {
	Amount         float64 `json:"amount" binding:"required,gt=0"`
	Method         string  `json:"method"`
	Description    string  `json:"description"`
	IdempotencyKey string  `json:"idempotency_key"`
}

// AddFunds credits the wallet and appends a CREDIT ledger entry in one
// transaction. A repeated idempotency key returns the original entry
// without crediting again.
func AddFunds(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var input FundsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Method == "" {
		input.Method = "UPI"
	}
	if input.Description == "" {
		input.Description = "Funds Added"
	}

	applyWalletOp(c, userID, models.TxCredit, input)
}

// Withdraw debits the wallet, rejecting amounts above the current
// balance. Same transactional and idempotency shape as AddFunds.
func Withdraw(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var input FundsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Description == "" {
		input.Description = "Funds Withdrawn"
	}

	applyWalletOp(c, userID, models.TxDebit, input)
}

func applyWalletOp(c *gin.Context, userID uint, txType string, input FundsInput) {
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

	// Replay detection; the user row lock above serializes retries for
	// the same account, so check-then-insert is safe here.
	if input.IdempotencyKey != "" {
		var prior models.Transaction
		err := tx.Where("user_id = ? AND idempotency_key = ?", userID, input.IdempotencyKey).First(&prior).Error
		if err == nil {
			tx.Rollback()
			c.JSON(http.StatusOK, gin.H{
				"message":     "Duplicate request, original transaction returned",
				"transaction": prior,
				"new_balance": user.Balance,
			})
			return
		}
		if err != gorm.ErrRecordNotFound {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
	}

	newBalance := user.Balance + input.Amount
	if txType == models.TxDebit {
		if user.Balance < input.Amount {
			tx.Rollback()
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient balance"})
			return
		}
		newBalance = user.Balance - input.Amount
	}

	transaction := models.Transaction{
		UserID:      userID,
		Reference:   uuid.NewString(),
		Type:        txType,
		Description: input.Description,
		Total:       input.Amount,
		Method:      input.Method,
		Status:      models.StatusCompleted,
	}
	if input.IdempotencyKey != "" {
		key := input.IdempotencyKey
		transaction.IdempotencyKey = &key
	}

	if err := tx.Create(&transaction).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record transaction"})
		return
	}

	if err := tx.Model(&user).Update("balance", newBalance).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update balance"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Transaction commit failed"})
		return
	}

	message := "Funds added successfully"
	if txType == models.TxDebit {
		message = "Withdrawal processed successfully"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     message,
		"transaction": transaction,
		"new_balance": newBalance,
	})
}
