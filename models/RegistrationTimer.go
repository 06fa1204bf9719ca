package models

import "time"

// RegistrationTimer is the countdown shown on the landing page.
// At most one row is active at a time.
type RegistrationTimer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EndTime   string    `gorm:"type:varchar(50);not null" json:"end_time"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"createdAt"`
}

func (RegistrationTimer) TableName() string { return "registration_timer" }
