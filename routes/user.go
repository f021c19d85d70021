package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/ompujari9512/library-system/controllers/cart"
	dashboardControllers "github.com/ompujari9512/library-system/controllers/dashboard"
	loanControllers "github.com/ompujari9512/library-system/controllers/loan"
	memberControllers "github.com/ompujari9512/library-system/controllers/member"
	"github.com/ompujari9512/library-system/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile & Dashboard ────────────────
		userGroup.GET("/profile", memberControllers.GetProfile(db))       // GET /user/profile
		userGroup.GET("/dashboard", dashboardControllers.GetStats(db))    // GET /user/dashboard

		// ──────────────── Book Bag ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))               // GET /user/cart
			cartGroup.POST("/:book_id", cartControllers.AddToCart(db))        // POST /user/cart/:book_id
			cartGroup.DELETE("/:book_id", cartControllers.RemoveFromCart(db)) // DELETE /user/cart/:book_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))          // DELETE /user/cart
		}

		// ──────────────── Loans ────────────────
		userGroup.POST("/checkout", loanControllers.CheckoutHandler(db))                     // POST /user/checkout
		userGroup.GET("/my-books", loanControllers.GetMyBooksHandler(db))                    // GET /user/my-books
		userGroup.POST("/my-books/:requestID/return", loanControllers.MemberReturnHandler(db)) // POST /user/my-books/:requestID/return
	}
}
