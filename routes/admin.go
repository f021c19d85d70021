package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	bookControllers "github.com/ompujari9512/library-system/controllers/book"
	cartControllers "github.com/ompujari9512/library-system/controllers/cart"
	loanControllers "github.com/ompujari9512/library-system/controllers/loan"
	memberControllers "github.com/ompujari9512/library-system/controllers/member"
	"github.com/ompujari9512/library-system/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a valid
// token plus the librarian role, re-checked against the database.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireLibrarian(db))
	{
		// ─────────── Catalog Management ───────────
		bookAdmin := adminGroup.Group("/books")
		{
			bookAdmin.POST("", bookControllers.CreateBook(db))
			bookAdmin.PUT("/:id", bookControllers.UpdateBook(db))
			bookAdmin.DELETE("/:id", bookControllers.DeleteBook(db))
			bookAdmin.POST("/import-excel", bookControllers.ImportBooksFromExcel(db))
			bookAdmin.GET("/export-excel", bookControllers.ExportBooksToExcel(db))
		}

		// ─────────── Loan Request Adjudication ───────────
		requestAdmin := adminGroup.Group("/requests")
		{
			requestAdmin.GET("", loanControllers.GetRequestsHandler(db))
			requestAdmin.POST("/:requestID/approve", loanControllers.ApproveRequestHandler(db))
			requestAdmin.POST("/:requestID/return", loanControllers.ReturnRequestHandler(db))
			requestAdmin.DELETE("/:requestID", loanControllers.RejectRequestHandler(db))
		}

		// ─────────── Member Management ───────────
		adminGroup.GET("/members", memberControllers.GetAllMembers(db))
		adminGroup.DELETE("/members/:user_id", memberControllers.DeleteMember(db))
		adminGroup.GET("/member-cart/:user_id", cartControllers.GetMemberCart(db))
	}
}
