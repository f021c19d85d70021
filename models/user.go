package models

import "time"

type Role string

const (
	RoleMember    Role = "member"
	RoleLibrarian Role = "librarian"
)

type User struct {
	ID           string       `gorm:"primaryKey" json:"id"`
	Username     string       `gorm:"unique;not null" json:"username"`
	Email        string       `gorm:"unique;not null" json:"email"`
	PasswordHash string       `gorm:"not null" json:"-"`
	Role         Role         `gorm:"type:VARCHAR(20);default:'member'" json:"role"`
	CartItems    []CartItem   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart_items,omitempty"`
	IssuedBooks  []IssuedBook `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"issued_books,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

func (u *User) IsLibrarian() bool {
	return u.Role == RoleLibrarian
}
