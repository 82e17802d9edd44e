package repositories

import (
	"errors"
	"time"

	"alumni_backend/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrResetTokenNotFound возвращается, когда reset-токен не найден в БД
	ErrResetTokenNotFound = errors.New("reset token not found")
)

// ResetTokenRepository определяет интерфейс для операций с токенами сброса пароля
type ResetTokenRepository interface {
	// Create создает новую запись о reset-токене
	Create(db *gorm.DB, token *models.PasswordResetToken) error

	// FindByToken находит reset-токен по его строковому значению
	FindByToken(db *gorm.DB, tokenString string) (*models.PasswordResetToken, error)

	// DeleteByToken удаляет reset-токен по его строковому значению.
	// Вызывается ТОЛЬКО при успешном сбросе: токен одноразовый.
	DeleteByToken(db *gorm.DB, tokenString string) error

	// DeleteByUserID удаляет все reset-токены пользователя
	DeleteByUserID(db *gorm.DB, userID string) error

	// CleanExpired удаляет все истекшие токены
	CleanExpired(db *gorm.DB) error
}

type resetTokenRepository struct{}

// NewResetTokenRepository создает новый экземпляр ResetTokenRepository
func NewResetTokenRepository() ResetTokenRepository {
	return &resetTokenRepository{}
}

func (r *resetTokenRepository) Create(db *gorm.DB, token *models.PasswordResetToken) error {
	return db.Create(token).Error
}

func (r *resetTokenRepository) FindByToken(db *gorm.DB, tokenString string) (*models.PasswordResetToken, error) {
	var token models.PasswordResetToken
	if err := db.Where("token = ?", tokenString).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResetTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

func (r *resetTokenRepository) DeleteByToken(db *gorm.DB, tokenString string) error {
	result := db.Where("token = ?", tokenString).Delete(&models.PasswordResetToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResetTokenNotFound
	}
	return nil
}

func (r *resetTokenRepository) DeleteByUserID(db *gorm.DB, userID string) error {
	return db.Where("user_id = ?", userID).Delete(&models.PasswordResetToken{}).Error
}

func (r *resetTokenRepository) CleanExpired(db *gorm.DB) error {
	return db.Where("expires_at < ?", time.Now()).Delete(&models.PasswordResetToken{}).Error
}
