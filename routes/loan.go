package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	loanControllers "github.com/ompujari9512/library-system/controllers/loan"
	"github.com/ompujari9512/library-system/middleware"
)

// SetupLoanRoutes registers the live ledger feed. The payloads carry other
// members' loan records, so the feed is librarian-only.
func SetupLoanRoutes(r *gin.Engine, db *gorm.DB) {
	loans := r.Group("/loans")
	loans.Use(middleware.ValidateToken, middleware.RequireLibrarian(db))
	{
		// websocket endpoint for real-time ledger updates
		loans.GET("/ws", loanControllers.LoanWebSocketHandler)
	}
}
