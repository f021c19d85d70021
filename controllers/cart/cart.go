package cartControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ompujari9512/library-system/models"
)

func currentUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	userID, _ := userIDVal.(string)
	return userID, true
}

// POST /user/cart/:book_id
// Re-adding a book already in the bag is a no-op, not a duplicate.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		bookID, err := strconv.ParseUint(c.Param("book_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
			return
		}

		var book models.Book
		if err := db.First(&book, bookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up book"})
			return
		}

		var item models.CartItem
		err = db.Where("user_id = ? AND book_id = ?", userID, book.ID).First(&item).Error
		if err == nil {
			c.JSON(http.StatusOK, gin.H{"message": "This book is already in your bag."})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check bag"})
			return
		}

		item = models.CartItem{
			UserID:  userID,
			BookID:  book.ID,
			AddedAt: time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add book to bag"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Added '" + book.Title + "' to your bag!"})
	}
}

// DELETE /user/cart/:book_id
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		bookID := c.Param("book_id")

		result := db.Where("user_id = ? AND book_id = ?", userID, bookID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove book from bag"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Book is not in your bag"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Removed from your bag."})
	}
}

// GET /user/cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var items []models.CartItem
		if err := db.
			Where("user_id = ?", userID).
			Preload("Book").
			Order("added_at DESC").
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bag"})
			return
		}

		c.JSON(http.StatusOK, items)
	}
}

// DELETE /user/cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		if err := db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear bag"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Bag cleared"})
	}
}

// GET /admin/member-cart/:user_id
func GetMemberCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		var items []models.CartItem
		if err := db.
			Where("user_id = ?", userID).
			Preload("Book").
			Order("added_at DESC").
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch member's bag"})
			return
		}

		c.JSON(http.StatusOK, items)
	}
}
