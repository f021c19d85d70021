package bookControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ompujari9512/library-system/models"
)

// UpdateBook updates an existing catalog entry by ID. Accepts the same
// fields as CreateBook; attachments are replaced only when re-uploaded.
func UpdateBook(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
			return
		}

		var book models.Book
		if err := db.First(&book, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
			return
		}

		if title := c.PostForm("title"); title != "" {
			book.Title = title
		}
		if author := c.PostForm("author"); author != "" {
			book.Author = author
		}
		if isbn := c.PostForm("isbn"); isbn != "" && isbn != book.ISBN {
			var count int64
			if err := db.Model(&models.Book{}).
				Where("isbn = ? AND id <> ?", isbn, book.ID).
				Count(&count).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check ISBN"})
				return
			}
			if count > 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "A book with this ISBN already exists"})
				return
			}
			book.ISBN = isbn
		}
		if quantityStr := c.PostForm("quantity"); quantityStr != "" {
			q, err := strconv.Atoi(quantityStr)
			if err != nil || q < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be a non-negative integer"})
				return
			}
			book.Quantity = q
		}
		if category := c.PostForm("category"); category != "" {
			if !validCategory(category) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
				return
			}
			book.Category = category
		}
		if format := c.PostForm("book_format"); format != "" {
			if !validFormat(format) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book format"})
				return
			}
			book.Format = models.BookFormat(format)
		}

		if pdfURL, err := saveAttachment(c, "pdf_file", "books"); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		} else if pdfURL != "" {
			book.PDFFile = pdfURL
		}
		if coverURL, err := saveAttachment(c, "cover_image", "covers"); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		} else if coverURL != "" {
			book.CoverImage = coverURL
		}

		if err := db.Save(&book).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update book"})
			return
		}

		c.JSON(http.StatusOK, book)
	}
}
