package models

import "time"

// VerifiedRegistration is the admin confirmation gate for a (user, event)
// registration pair. Visibility of a registration in any listing is
// controlled solely by this row.
type VerifiedRegistration struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_verified_user_event" json:"userId"`
	EventID   uint      `gorm:"not null;uniqueIndex:idx_verified_user_event" json:"eventId"`
	Verified  bool      `gorm:"not null" json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
}
