package models

import "time"

// Account is a payment target that events point registrants at
type Account struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	AccountName   string    `gorm:"type:varchar(255);not null" json:"accountName"`
	BankName      string    `gorm:"type:varchar(255);not null" json:"bankName"`
	AccountNumber string    `gorm:"type:varchar(255);not null" json:"accountNumber"`
	IfscCode      string    `gorm:"type:varchar(255);not null" json:"ifscCode"`
	QrCodePdf     []byte    `gorm:"type:blob" json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
}

// EventAccount links an event to a payment account (many-to-many)
type EventAccount struct {
	EventID   uint `gorm:"primaryKey;autoIncrement:false" json:"eventId"`
	AccountID uint `gorm:"primaryKey;autoIncrement:false" json:"accountId"`
}
