package models

import "time"

// User represents a student account that can browse events, hold a cart and register
type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	FullName      string    `gorm:"type:varchar(255);not null" json:"fullName"`
	Email         string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password      string    `gorm:"type:varchar(255);not null" json:"-"`
	Dob           string    `gorm:"type:varchar(20)" json:"dob"`
	Mobile        string    `gorm:"type:varchar(20)" json:"mobile"`
	College       string    `gorm:"type:varchar(255)" json:"college"`
	Department    string    `gorm:"type:varchar(255)" json:"department"`
	YearOfPassing int       `json:"yearOfPassing"`
	State         string    `gorm:"type:varchar(255)" json:"state"`
	District      string    `gorm:"type:varchar(255)" json:"district"`
	CreatedAt     time.Time `json:"createdAt"`
}
