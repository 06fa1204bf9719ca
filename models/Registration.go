package models

import "time"

// RoundStatus is the per-round eligibility state of a registration.
// The wire encoding is the raw integer: -1 pending, 0 not eligible, 1 eligible.
type RoundStatus int8

const (
	RoundPending     RoundStatus = -1
	RoundNotEligible RoundStatus = 0
	RoundEligible    RoundStatus = 1
)

// Valid reports whether s is one of the three known states
func (s RoundStatus) Valid() bool {
	return s == RoundPending || s == RoundNotEligible || s == RoundEligible
}

// Decided reports whether an admin has evaluated the round
func (s RoundStatus) Decided() bool {
	return s == RoundNotEligible || s == RoundEligible
}

// Registration is a paid registration backed by a transaction proof.
// One submission may cover several events; each row stores its own
// event's listed fee, all sharing the submission's transaction id.
type Registration struct {
	ID                    uint        `gorm:"primaryKey" json:"id"`
	Symposium             string      `gorm:"type:varchar(255);not null" json:"symposium"`
	EventID               uint        `gorm:"not null;uniqueIndex:idx_paid_user_event" json:"eventId"`
	UserName              string      `gorm:"type:varchar(255);not null" json:"userName"`
	UserEmail             string      `gorm:"type:varchar(255);not null;uniqueIndex:idx_paid_user_event" json:"userEmail"`
	MobileNumber          string      `gorm:"type:varchar(20)" json:"mobileNumber"`
	TransactionID         string      `gorm:"type:varchar(255);not null;index" json:"transactionId"`
	TransactionUsername   string      `gorm:"type:varchar(255)" json:"transactionUsername"`
	TransactionTime       string      `gorm:"type:varchar(50)" json:"transactionTime"`
	TransactionDate       string      `gorm:"type:varchar(50)" json:"transactionDate"`
	TransactionAmount     float64     `gorm:"type:decimal(10,2)" json:"transactionAmount"`
	TransactionScreenshot []byte      `gorm:"type:mediumblob" json:"-"`
	Round1                RoundStatus `gorm:"type:smallint;not null;default:-1" json:"round1"`
	Round2                RoundStatus `gorm:"type:smallint;not null;default:-1" json:"round2"`
	Round3                RoundStatus `gorm:"type:smallint;not null;default:-1" json:"round3"`
	CreatedAt             time.Time   `json:"createdAt"`
}

// Round returns the eligibility state for round number n (1..3)
func (r *Registration) Round(n int) RoundStatus {
	switch n {
	case 1:
		return r.Round1
	case 2:
		return r.Round2
	case 3:
		return r.Round3
	}
	return RoundPending
}

// SimpleRegistration is a free registration with no payment proof and
// no round tracking. Kept in its historical table.
type SimpleRegistration struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserEmail string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_simple_user_event" json:"userEmail"`
	EventID   uint      `gorm:"not null;uniqueIndex:idx_simple_user_event" json:"eventId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (SimpleRegistration) TableName() string { return "enigma_non_workshop_registrations" }
