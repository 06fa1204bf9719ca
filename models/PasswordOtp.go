package models

import "time"

// PasswordOtp is a one-time code for password reset, persisted so a
// restart does not invalidate in-flight resets. Codes expire after
// OtpTTL and are deleted on successful verification.
type PasswordOtp struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	Code      string    `gorm:"type:varchar(10);not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// OtpTTL is how long an issued code stays valid
const OtpTTL = 10 * time.Minute

// Expired reports whether the code is past its validity window
func (o *PasswordOtp) Expired() bool {
	return time.Since(o.CreatedAt) > OtpTTL
}
