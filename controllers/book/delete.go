package bookControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ompujari9512/library-system/models"
)

// DeleteBook removes a catalog entry. Cart rows and loan records for the
// book cascade with it.
func DeleteBook(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
			return
		}

		var book models.Book
		if err := db.First(&book, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up book"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("book_id = ?", book.ID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("book_id = ?", book.ID).Delete(&models.IssuedBook{}).Error; err != nil {
				return err
			}
			return tx.Delete(&book).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete book"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Book deleted successfully!"})
	}
}
