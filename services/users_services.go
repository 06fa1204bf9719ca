package services

import (
	"errors"
	"fmt"

	"symposium-api/models"

	"gorm.io/gorm"
)

// UserEmailByID resolves a user id to the email that keys their
// registration rows
func UserEmailByID(db *gorm.DB, userID uint) (string, error) {
	var user models.User
	if err := db.Select("email").First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: id %d", ErrUserNotFound, userID)
		}
		return "", err
	}
	return user.Email, nil
}
