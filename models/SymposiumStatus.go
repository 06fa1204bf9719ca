package models

import "time"

// SymposiumStatus is the open/closed switch for one symposium track,
// seeded at startup with one row per known symposium.
type SymposiumStatus struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SymposiumName string    `gorm:"type:varchar(255);unique;not null" json:"symposiumName"`
	IsOpen        bool      `gorm:"not null;default:false" json:"isOpen"`
	StartDate     string    `gorm:"type:varchar(20)" json:"startDate"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (SymposiumStatus) TableName() string { return "symposium_status" }
