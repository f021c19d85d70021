package models

import (
	"time"

	"gorm.io/gorm"
)

type RequestStatus string

const (
	// Loan request lifecycle. A Pending request was submitted at checkout
	// and awaits librarian review; rejection deletes the row outright, so
	// there is no explicit rejected state.
	StatusPending  RequestStatus = "Pending"
	StatusIssued   RequestStatus = "Issued"
	StatusReturned RequestStatus = "Returned"
)

// DefaultLoanPeriod is applied when a checkout omits the return date.
const DefaultLoanPeriod = 15 * 24 * time.Hour

type IssuedBook struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	UserID     string        `gorm:"not null;index" json:"user_id"`
	User       User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	BookID     uint          `gorm:"not null;index" json:"book_id"`
	Book       Book          `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"book"`
	IssuedDate time.Time     `json:"issued_date"`
	ReturnDate *time.Time    `json:"return_date"`
	Status     RequestStatus `gorm:"type:VARCHAR(10);default:'Pending'" json:"status"`
}

// BeforeCreate fills the defaults the checkout form may omit.
func (ib *IssuedBook) BeforeCreate(tx *gorm.DB) error {
	if ib.IssuedDate.IsZero() {
		ib.IssuedDate = time.Now()
	}
	if ib.ReturnDate == nil {
		due := ib.IssuedDate.Add(DefaultLoanPeriod)
		ib.ReturnDate = &due
	}
	return nil
}
