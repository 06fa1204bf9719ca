package models

import "time"

// Experience statuses
const (
	ExperiencePending  = "pending"
	ExperienceApproved = "approved"
	ExperienceRejected = "rejected"
)

// Experience is a placement/internship write-up submitted as a PDF and
// reviewed by an admin before it is shown publicly.
type Experience struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Email         string    `gorm:"type:varchar(255);not null" json:"email"`
	Type          string    `gorm:"type:varchar(20);not null" json:"type"`
	YearOfPassing int       `gorm:"column:year_of_passing;not null" json:"year_of_passing"`
	Company       string    `gorm:"type:varchar(255);not null" json:"company"`
	LinkedinURL   string    `gorm:"column:linkedin_url;type:varchar(255)" json:"linkedin_url"`
	PdfFile       []byte    `gorm:"type:longblob;not null" json:"-"`
	Status        string    `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}
