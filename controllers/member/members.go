package memberControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ompujari9512/library-system/models"
)

// GET /user/profile
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", userIDVal).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// GET /admin/members
func GetAllMembers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var members []models.User
		if err := db.
			Select("id", "username", "email", "role", "created_at").
			Order("created_at desc").
			Find(&members).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch members"})
			return
		}

		c.JSON(http.StatusOK, members)
	}
}

// DELETE /admin/members/:user_id
// A librarian cannot remove their own account through this endpoint.
func DeleteMember(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorIDVal, _ := c.Get("user_id")
		actorID, _ := actorIDVal.(string)
		targetID := c.Param("user_id")

		if targetID == actorID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot delete your own account here."})
			return
		}

		var member models.User
		if err := db.First(&member, "id = ?", targetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up member"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("user_id = ?", member.ID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", member.ID).Delete(&models.IssuedBook{}).Error; err != nil {
				return err
			}
			return tx.Delete(&member).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove member"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Member removed successfully."})
	}
}
