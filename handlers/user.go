package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockfolio/config"
	"stockfolio/models"
)

type ProfileInput struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	PanCard     *string `json:"pan_card"`
	BankAccount *string `json:"bank_account"`
}

func GetProfile(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile changes identity fields only. Balance is deliberately
// not accepted here; the wallet and trade endpoints are the only
// balance mutators, so every change has a ledger entry.
func UpdateProfile(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := make(map[string]interface{})
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.PanCard != nil {
		updates["pan_card"] = *input.PanCard
	}
	if input.BankAccount != nil {
		updates["bank_account"] = *input.BankAccount
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}
