package bookControllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ompujari9512/library-system/models"
)

func uploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// saveAttachment stores an optional uploaded file under the uploads dir and
// returns its public URL, or "" when the field was not submitted.
func saveAttachment(c *gin.Context, field, subdir string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	filename := strings.ReplaceAll(file.Filename, " ", "_")

	saveDir := filepath.Join(uploadDir(), subdir)
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}
	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", field, err)
	}
	return fmt.Sprintf("/uploads/%s/%s", subdir, filename), nil
}

func validCategory(category string) bool {
	_, ok := models.BookCategories[category]
	return ok
}

func validFormat(format string) bool {
	_, ok := models.BookFormats[models.BookFormat(format)]
	return ok
}

// CreateBook adds a new catalog entry with optional pdf + cover uploads.
// Librarian only (enforced by the admin route group).
func CreateBook(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := c.PostForm("title")
		author := c.PostForm("author")
		isbn := c.PostForm("isbn")
		if title == "" || author == "" || isbn == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title, author, and isbn are required"})
			return
		}

		quantity := 5
		if quantityStr := c.PostForm("quantity"); quantityStr != "" {
			q, err := strconv.Atoi(quantityStr)
			if err != nil || q < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be a non-negative integer"})
				return
			}
			quantity = q
		}

		category := c.DefaultPostForm("category", "novel")
		if !validCategory(category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
			return
		}
		format := c.DefaultPostForm("book_format", string(models.FormatPaperback))
		if !validFormat(format) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book format"})
			return
		}

		var count int64
		if err := db.Model(&models.Book{}).Where("isbn = ?", isbn).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check ISBN"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A book with this ISBN already exists"})
			return
		}

		pdfURL, err := saveAttachment(c, "pdf_file", "books")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		coverURL, err := saveAttachment(c, "cover_image", "covers")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		book := models.Book{
			Title:      title,
			Author:     author,
			ISBN:       isbn,
			Quantity:   quantity,
			Category:   category,
			Format:     models.BookFormat(format),
			PDFFile:    pdfURL,
			CoverImage: coverURL,
		}
		if err := db.Create(&book).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "A book with this ISBN already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create book"})
			return
		}

		c.JSON(http.StatusCreated, book)
	}
}
