package dashboardControllers

import (
	"encoding/json"
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

type statsResponse struct {
	TotalBooks   int64 `json:"total_books"`
	CartCount    int64 `json:"cart_count"`
	PendingCount int64 `json:"pending_count"`
	IssuedCount  int64 `json:"issued_count"`
}

func getStats(t *testing.T, db *gorm.DB, userID string) statsResponse {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/dashboard/stats", func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	}, GetStats(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/stats", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp statsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func seedWorld(t *testing.T, db *gorm.DB) (librarian, member, other models.User) {
	t.Helper()
	users := []*models.User{
		{ID: uuid.NewString(), Username: "lib", Email: "lib@example.com", PasswordHash: "x", Role: models.RoleLibrarian},
		{ID: uuid.NewString(), Username: "alice", Email: "alice@example.com", PasswordHash: "x", Role: models.RoleMember},
		{ID: uuid.NewString(), Username: "bob", Email: "bob@example.com", PasswordHash: "x", Role: models.RoleMember},
	}
	for _, u := range users {
		require.NoError(t, db.Create(u).Error)
	}

	book := models.Book{Title: "Dune", Author: "A", ISBN: "1", Quantity: 5, Category: "scifi", Format: models.FormatPaperback}
	require.NoError(t, db.Create(&book).Error)

	// alice: one cart item, one pending, one issued; bob: one pending
	require.NoError(t, db.Create(&models.CartItem{UserID: users[1].ID, BookID: book.ID}).Error)
	require.NoError(t, db.Create(&models.IssuedBook{UserID: users[1].ID, BookID: book.ID, Status: models.StatusPending}).Error)
	require.NoError(t, db.Create(&models.IssuedBook{UserID: users[1].ID, BookID: book.ID, Status: models.StatusIssued}).Error)
	require.NoError(t, db.Create(&models.IssuedBook{UserID: users[2].ID, BookID: book.ID, Status: models.StatusPending}).Error)

	return *users[0], *users[1], *users[2]
}

func TestStatsAnonymousSeesOnlyTotals(t *testing.T) {
	db := setupTestDB(t)
	seedWorld(t, db)

	resp := getStats(t, db, "")
	assert.EqualValues(t, 1, resp.TotalBooks)
	assert.Zero(t, resp.CartCount)
	assert.Zero(t, resp.PendingCount)
	assert.Zero(t, resp.IssuedCount)
}

func TestStatsMemberSeesOwnCounts(t *testing.T) {
	db := setupTestDB(t)
	_, alice, bob := seedWorld(t, db)

	resp := getStats(t, db, alice.ID)
	assert.EqualValues(t, 1, resp.CartCount)
	assert.EqualValues(t, 1, resp.PendingCount)
	assert.EqualValues(t, 1, resp.IssuedCount)

	resp = getStats(t, db, bob.ID)
	assert.Zero(t, resp.CartCount)
	assert.EqualValues(t, 1, resp.PendingCount)
	assert.Zero(t, resp.IssuedCount)
}

func TestStatsLibrarianSeesGlobalCounts(t *testing.T) {
	db := setupTestDB(t)
	librarian, _, _ := seedWorld(t, db)

	resp := getStats(t, db, librarian.ID)
	assert.EqualValues(t, 2, resp.PendingCount)
	assert.EqualValues(t, 1, resp.IssuedCount)
}
