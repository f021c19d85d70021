package dashboardControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ompujari9512/library-system/models"
)

// GetStats powers the dashboard counters. total_books is global; the
// remaining counts are scoped to the caller: a librarian sees the whole
// ledger, a member only their own rows. Role is read from the user's row,
// not the token.
func GetStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalBooks int64
		if err := db.Model(&models.Book{}).Count(&totalBooks).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count books"})
			return
		}

		stats := gin.H{
			"total_books":   totalBooks,
			"cart_count":    0,
			"pending_count": 0,
			"issued_count":  0,
		}

		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusOK, stats)
			return
		}
		userID, _ := userIDVal.(string)

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusOK, stats)
			return
		}

		var cartCount int64
		db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&cartCount)
		stats["cart_count"] = cartCount

		var pendingCount, issuedCount int64
		pendingQuery := db.Model(&models.IssuedBook{}).Where("status = ?", models.StatusPending)
		issuedQuery := db.Model(&models.IssuedBook{}).Where("status = ?", models.StatusIssued)
		if !user.IsLibrarian() {
			pendingQuery = pendingQuery.Where("user_id = ?", userID)
			issuedQuery = issuedQuery.Where("user_id = ?", userID)
		}
		pendingQuery.Count(&pendingCount)
		issuedQuery.Count(&issuedCount)
		stats["pending_count"] = pendingCount
		stats["issued_count"] = issuedCount

		c.JSON(http.StatusOK, stats)
	}
}
