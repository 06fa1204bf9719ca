package models

import "time"

// CartItem is a selected-but-unpaid event held per user until checkout
type CartItem struct {
	CartID        uint      `gorm:"primaryKey;column:cart_id" json:"cartId"`
	UserID        uint      `gorm:"not null;uniqueIndex:idx_cart_user_event" json:"userId"`
	EventID       uint      `gorm:"not null;uniqueIndex:idx_cart_user_event" json:"eventId"`
	SymposiumName string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_cart_user_event" json:"symposiumName"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (CartItem) TableName() string { return "cart" }
