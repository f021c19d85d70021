package models

import "time"

type CartItem struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	UserID  string    `gorm:"not null;uniqueIndex:idx_cart_user_book" json:"user_id"`
	BookID  uint      `gorm:"not null;uniqueIndex:idx_cart_user_book" json:"book_id"`
	Book    Book      `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"book"`
	AddedAt time.Time `json:"added_at"`
}
