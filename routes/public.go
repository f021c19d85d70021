package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	bookControllers "github.com/ompujari9512/library-system/controllers/book"
	dashboardControllers "github.com/ompujari9512/library-system/controllers/dashboard"
)

// SetupPublicRoutes registers the endpoints available without an account:
// catalog browsing and the global dashboard counters.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/books", bookControllers.GetBooks(db))            // GET /books?q=&page=
	r.GET("/books/:id", bookControllers.GetBookByID(db))     // GET /books/:id
	r.GET("/categories", bookControllers.GetCategories())    // GET /categories
	r.GET("/dashboard/stats", dashboardControllers.GetStats(db))
}
