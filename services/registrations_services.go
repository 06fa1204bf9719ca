package services

import (
	"errors"
	"fmt"
	"time"

	"symposium-api/metrics"
	"symposium-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sentinel errors for registration outcomes, mapped to HTTP statuses at
// the handler boundary.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEventNotFound     = errors.New("event not found")
	ErrTransactionIDUsed = errors.New("transaction ID already used for another registration")
	ErrAlreadyRegistered = errors.New("already registered")
)

// PaymentProof carries the transaction evidence of a paid submission.
// One proof may cover several events.
type PaymentProof struct {
	TransactionID       string
	TransactionUsername string
	TransactionTime     string
	TransactionDate     string
	MobileNumber        string
	Screenshot          []byte
}

// RegisterPaidEvents inserts one Registration row per event id, all
// sharing the submission's transaction proof. Each row records its own
// event's listed fee, not a split of the total paid. Meant to run
// inside a transaction so a failure rolls back every row.
func RegisterPaidEvents(tx *gorm.DB, userID uint, eventIDs []uint, proof PaymentProof) error {
	defer metrics.RecordDBOperation("insert", "registrations", time.Now())

	var user models.User
	if err := tx.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: id %d", ErrUserNotFound, userID)
		}
		return err
	}

	// A transaction id identifies one submission; any prior use means
	// this proof was already consumed
	var used int64
	if err := tx.Model(&models.Registration{}).
		Where("transaction_id = ?", proof.TransactionID).
		Count(&used).Error; err != nil {
		return err
	}
	if used > 0 {
		return ErrTransactionIDUsed
	}

	for _, eventID := range eventIDs {
		event, err := FindEventAcrossSymposia(tx, eventID)
		if err != nil {
			return fmt.Errorf("%w: id %d", ErrEventNotFound, eventID)
		}

		registration := models.Registration{
			Symposium:             event.Symposium,
			EventID:               eventID,
			UserName:              user.FullName,
			UserEmail:             user.Email,
			MobileNumber:          proof.MobileNumber,
			TransactionID:         proof.TransactionID,
			TransactionUsername:   proof.TransactionUsername,
			TransactionTime:       proof.TransactionTime,
			TransactionDate:       proof.TransactionDate,
			TransactionAmount:     event.RegistrationFees,
			TransactionScreenshot: proof.Screenshot,
			Round1:                models.RoundPending,
			Round2:                models.RoundPending,
			Round3:                models.RoundPending,
		}

		// Conflict-free insert: the unique index on (user_email,
		// event_id) backs the duplicate-registration invariant
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_email"}, {Name: "event_id"}},
			DoNothing: true,
		}).Create(&registration)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w for event %s", ErrAlreadyRegistered, event.EventName)
		}
	}

	return nil
}

// RegisterFreeEvent inserts a SimpleRegistration for a free event.
// Duplicate (userEmail, eventId) pairs are rejected via the table's
// unique index rather than a racy pre-check.
func RegisterFreeEvent(db *gorm.DB, userEmail string, eventID uint) error {
	registration := models.SimpleRegistration{
		UserEmail: userEmail,
		EventID:   eventID,
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_email"}, {Name: "event_id"}},
		DoNothing: true,
	}).Create(&registration)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w for this event", ErrAlreadyRegistered)
	}
	return nil
}

// TransactionIDUsed reports whether a transaction id already backs a registration
func TransactionIDUsed(db *gorm.DB, transactionID string) (bool, error) {
	var count int64
	err := db.Model(&models.Registration{}).
		Where("transaction_id = ?", transactionID).
		Count(&count).Error
	return count > 0, err
}
