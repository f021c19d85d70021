package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public, auth,
// user, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public routes (no middleware): browse the catalog as a guest
	SetupPublicRoutes(r, db)

	// Auth routes (signup / login)
	SetupAuthRoutes(r, db)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Admin routes (JWT + librarian role)
	SetupAdminRoutes(r, db)

	// Loan event feed
	SetupLoanRoutes(r, db)
}
