package loanControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ompujari9512/library-system/models"
)

// Domain failures surfaced to the request boundary. NotFound rides on
// gorm.ErrRecordNotFound.
var (
	ErrEmptyCart  = errors.New("cart is empty")
	ErrOutOfStock = errors.New("book is out of stock")
	ErrNotPending = errors.New("request is no longer pending")
	ErrNotIssued  = errors.New("book is not currently issued")
	ErrNotOwner   = errors.New("record belongs to another member")
	ErrBadDates   = errors.New("return date is before issue date")
)

// -------- Request Structs --------

type CheckoutRequest struct {
	FromDate string `json:"from_date"` // YYYY-MM-DD, defaults to today
	ToDate   string `json:"to_date"`   // YYYY-MM-DD, defaults to from+15d
}

// Map string to RequestStatus
func mapRequestStatus(status string) (models.RequestStatus, error) {
	switch strings.ToLower(status) {
	case "pending":
		return models.StatusPending, nil
	case "issued":
		return models.StatusIssued, nil
	case "returned":
		return models.StatusReturned, nil
	default:
		return "", errors.New("invalid request status")
	}
}

// -------- Core Logic --------

// Checkout converts every cart item of the user into a Pending loan record
// with the submitted date range, then clears the cart. All-or-nothing: the
// records and the cart deletion commit together or not at all. Stock is not
// checked here; availability is decided at approval time.
func Checkout(db *gorm.DB, userID string, from, to *time.Time) ([]models.IssuedBook, error) {
	if to != nil {
		// the effective issue date is now when from is omitted
		issue := time.Now()
		if from != nil {
			issue = *from
		}
		if to.Before(issue) {
			return nil, ErrBadDates
		}
	}

	var records []models.IssuedBook
	err := db.Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).
			Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		itemIDs := make([]uint, 0, len(items))
		for _, item := range items {
			record := models.IssuedBook{
				UserID:     userID,
				BookID:     item.BookID,
				Status:     models.StatusPending,
				ReturnDate: to,
			}
			if from != nil {
				record.IssuedDate = *from
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
			records = append(records, record)
			itemIDs = append(itemIDs, item.ID)
		}
		// Clear only the converted rows; an item added to the bag while
		// the checkout runs stays for the next one.
		return tx.Where("id IN ?", itemIDs).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ApproveRequest moves a Pending record to Issued and decrements the book's
// stock. The record and book rows are locked for the duration so two
// librarians racing on the same request cannot both succeed. With zero
// stock the record is left Pending for retry after a return.
func ApproveRequest(db *gorm.DB, requestID uint) (*models.IssuedBook, error) {
	var record models.IssuedBook
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&record, requestID).Error; err != nil {
			return err
		}
		if record.Status != models.StatusPending {
			return ErrNotPending
		}

		var book models.Book
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&book, record.BookID).Error; err != nil {
			return err
		}
		if book.Quantity <= 0 {
			return ErrOutOfStock
		}

		book.Quantity--
		if err := tx.Save(&book).Error; err != nil {
			return err
		}

		record.Status = models.StatusIssued
		record.Book = book
		return tx.Save(&record).Error
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// RejectRequest deletes a Pending record outright. No stock ever moved for
// it, so there is nothing to restore. Issued and Returned records are
// history and cannot be rejected.
func RejectRequest(db *gorm.DB, requestID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var record models.IssuedBook
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&record, requestID).Error; err != nil {
			return err
		}
		if record.Status != models.StatusPending {
			return ErrNotPending
		}
		return tx.Delete(&record).Error
	})
}

// ReturnBook closes an Issued record and puts the copy back on the shelf.
// A member may only return their own record; librarians may return any.
func ReturnBook(db *gorm.DB, requestID uint, actorID string, librarian bool) (*models.IssuedBook, error) {
	var record models.IssuedBook
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&record, requestID).Error; err != nil {
			return err
		}
		if !librarian && record.UserID != actorID {
			return ErrNotOwner
		}
		if record.Status != models.StatusIssued {
			return ErrNotIssued
		}

		var book models.Book
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&book, record.BookID).Error; err != nil {
			return err
		}
		book.Quantity++
		if err := tx.Save(&book).Error; err != nil {
			return err
		}

		now := time.Now()
		record.Status = models.StatusReturned
		record.ReturnDate = &now
		record.Book = book
		return tx.Save(&record).Error
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// -------- Handlers --------

func parseCheckoutDates(req CheckoutRequest) (from, to *time.Time, err error) {
	const layout = "2006-01-02"
	if req.FromDate != "" {
		f, parseErr := time.Parse(layout, req.FromDate)
		if parseErr != nil {
			return nil, nil, errors.New("invalid from_date, expected YYYY-MM-DD")
		}
		from = &f
	}
	if req.ToDate != "" {
		t, parseErr := time.Parse(layout, req.ToDate)
		if parseErr != nil {
			return nil, nil, errors.New("invalid to_date, expected YYYY-MM-DD")
		}
		to = &t
	}
	return from, to, nil
}

// Checkout (member)
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID, _ := userIDVal.(string)

		var req CheckoutRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
				return
			}
		}
		from, to, err := parseCheckoutDates(req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		records, err := Checkout(db, userID, from, to)
		switch {
		case errors.Is(err, ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your bag is empty!"})
			return
		case errors.Is(err, ErrBadDates):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
			return
		}

		for _, record := range records {
			broadcastLoanEvent("request_submitted", record)
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":  "Request sent to librarian! Check 'My Books' for status.",
			"requests": records,
		})
	}
}

// My books (member)
func GetMyBooksHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID, _ := userIDVal.(string)

		var records []models.IssuedBook
		if err := db.
			Where("user_id = ?", userID).
			Preload("Book").
			Order("issued_date DESC").
			Find(&records).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch loan records"})
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

// Request queue (librarian). Optional ?status= filter; by default the
// review view: pending and issued lists side by side.
func GetRequestsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if statusParam := c.Query("status"); statusParam != "" {
			status, err := mapRequestStatus(statusParam)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var records []models.IssuedBook
			if err := db.
				Where("status = ?", status).
				Preload("User").Preload("Book").
				Order("issued_date DESC").
				Find(&records).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
				return
			}
			c.JSON(http.StatusOK, records)
			return
		}

		var pending, issued []models.IssuedBook
		if err := db.
			Where("status = ?", models.StatusPending).
			Preload("User").Preload("Book").
			Order("issued_date DESC").
			Find(&pending).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending requests"})
			return
		}
		if err := db.
			Where("status = ?", models.StatusIssued).
			Preload("User").Preload("Book").
			Order("issued_date DESC").
			Find(&issued).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch issued books"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"pending": pending, "issued": issued})
	}
}

func requestIDParam(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("requestID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return 0, false
	}
	return uint(id64), true
}

// Approve (librarian)
func ApproveRequestHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID, ok := requestIDParam(c)
		if !ok {
			return
		}

		record, err := ApproveRequest(db, requestID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		case errors.Is(err, ErrOutOfStock):
			c.JSON(http.StatusConflict, gin.H{"error": "Cannot approve: Book is Out of Stock."})
			return
		case errors.Is(err, ErrNotPending):
			c.JSON(http.StatusConflict, gin.H{"error": "Only pending requests can be approved"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve request"})
			return
		}

		broadcastLoanEvent("request_approved", *record)
		c.JSON(http.StatusOK, gin.H{
			"message": "Request approved! '" + record.Book.Title + "' is now issued.",
			"request": record,
		})
	}
}

// Reject (librarian)
func RejectRequestHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID, ok := requestIDParam(c)
		if !ok {
			return
		}

		err := RejectRequest(db, requestID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		case errors.Is(err, ErrNotPending):
			c.JSON(http.StatusConflict, gin.H{"error": "Only pending requests can be rejected"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject request"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Request rejected and removed."})
	}
}

// Return (librarian, any record)
func ReturnRequestHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID, ok := requestIDParam(c)
		if !ok {
			return
		}
		userIDVal, _ := c.Get("user_id")
		userID, _ := userIDVal.(string)

		record, err := ReturnBook(db, requestID, userID, true)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		case errors.Is(err, ErrNotIssued):
			c.JSON(http.StatusConflict, gin.H{"error": "Only issued books can be returned"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to return book"})
			return
		}

		broadcastLoanEvent("book_returned", *record)
		c.JSON(http.StatusOK, gin.H{
			"message": "Book '" + record.Book.Title + "' returned successfully. Stock updated.",
			"request": record,
		})
	}
}

// Return (member, own record only). A record that is not currently issued
// is reported as a warning, not an error.
func MemberReturnHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID, ok := requestIDParam(c)
		if !ok {
			return
		}
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID, _ := userIDVal.(string)

		record, err := ReturnBook(db, requestID, userID, false)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		case errors.Is(err, ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only return your own books"})
			return
		case errors.Is(err, ErrNotIssued):
			c.JSON(http.StatusOK, gin.H{"warning": "This book is not currently issued to you."})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to return book"})
			return
		}

		broadcastLoanEvent("book_returned", *record)
		c.JSON(http.StatusOK, gin.H{
			"message": "Successfully returned '" + record.Book.Title + "'!",
			"request": record,
		})
	}
}
