package memberControllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ompujari9512/library-system/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Book{}, &models.CartItem{}, &models.IssuedBook{},
	))
	return db
}

func newRouter(db *gorm.DB, actorID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", actorID)
		c.Next()
	})
	r.GET("/user/profile", GetProfile(db))
	r.GET("/admin/members", GetAllMembers(db))
	r.DELETE("/admin/members/:user_id", DeleteMember(db))
	return r
}

func seedUser(t *testing.T, db *gorm.DB, username string, role models.Role) models.User {
	t.Helper()
	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "secret-hash",
		Role:         role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestProfileOmitsPasswordHash(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice", models.RoleMember)
	r := newRouter(db, user.ID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user/profile", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
	assert.NotContains(t, w.Body.String(), "secret-hash")
}

func TestDeleteMemberCascadesAndGuardsSelf(t *testing.T) {
	db := setupTestDB(t)
	librarian := seedUser(t, db, "lib", models.RoleLibrarian)
	member := seedUser(t, db, "alice", models.RoleMember)

	book := models.Book{Title: "Dune", Author: "A", ISBN: "1", Quantity: 1, Category: "scifi", Format: models.FormatPaperback}
	require.NoError(t, db.Create(&book).Error)
	require.NoError(t, db.Create(&models.CartItem{UserID: member.ID, BookID: book.ID}).Error)
	require.NoError(t, db.Create(&models.IssuedBook{UserID: member.ID, BookID: book.ID, Status: models.StatusPending}).Error)

	r := newRouter(db, librarian.ID)

	// self-deletion refused
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/members/"+librarian.ID, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// deleting the member removes their cart and ledger rows
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/members/"+member.ID, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var userCount, cartCount, loanCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.CartItem{}).Count(&cartCount)
	db.Model(&models.IssuedBook{}).Count(&loanCount)
	assert.EqualValues(t, 1, userCount)
	assert.Zero(t, cartCount)
	assert.Zero(t, loanCount)
}

func TestDeleteUnknownMember(t *testing.T) {
	db := setupTestDB(t)
	librarian := seedUser(t, db, "lib", models.RoleLibrarian)
	r := newRouter(db, librarian.ID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/members/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
