package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ompujari9512/library-system/models"
)

// RequireLibrarian gates the admin route group. The role is re-read from
// the database rather than trusted from the token, so a demoted librarian
// loses access as soon as their row changes.
func RequireLibrarian(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		userID, _ := userIDVal.(string)

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown user"})
			c.Abort()
			return
		}
		if !user.IsLibrarian() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Librarian access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
