package bookControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ompujari9512/library-system/models"
)

// GetCategories lists the category and format choices for the catalog
// forms. The sets are fixed, so no database round trip.
func GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"categories": models.BookCategories,
			"formats":    models.BookFormats,
		})
	}
}
