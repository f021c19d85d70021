package bookControllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ompujari9512/library-system/models"
)

// Catalog pages show 8 books at a time.
const booksPerPage = 8

// GetBooks lists the catalog, newest first, with optional search and
// pagination. Public: browsing needs no account.
// Query params: q, page
func GetBooks(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("q")
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}

		query := db.Model(&models.Book{})
		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where(
				"title ILIKE ? OR author ILIKE ? OR isbn ILIKE ? OR category ILIKE ?",
				likePattern, likePattern, likePattern, likePattern,
			)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count books"})
			return
		}

		var books []models.Book
		if err := query.
			Order("id DESC").
			Limit(booksPerPage).
			Offset((page - 1) * booksPerPage).
			Find(&books).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch books"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"books":        books,
			"total_count":  total,
			"page":         page,
			"total_pages":  int(math.Ceil(float64(total) / float64(booksPerPage))),
			"search_query": search,
		})
	}
}
