package models

import "time"

// Organizer is a separate principal type from User with its own login branch
type Organizer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	Mobile    string    `gorm:"type:varchar(20);not null" json:"mobile"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
