package services

import (
	"fmt"
	"time"

	"alumni_backend/internal/auth"
	"alumni_backend/internal/config"
	"alumni_backend/internal/email"
	"alumni_backend/internal/models"
	"alumni_backend/internal/repositories"
	"alumni_backend/internal/services/dto"
	"alumni_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// resetTokenTTL - окно валидности токена сброса пароля
const resetTokenTTL = 1 * time.Hour

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResult, error)
	Me(db *gorm.DB, userID string) (*models.User, error)
	ListUsers(db *gorm.DB) ([]models.User, error)
	RequestPasswordReset(db *gorm.DB, email string) error
	ResetPassword(db *gorm.DB, token, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo       repositories.UserRepository
	resetTokenRepo repositories.ResetTokenRepository
	emailProvider  email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	resetTokenRepo repositories.ResetTokenRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:       userRepo,
		resetTokenRepo: resetTokenRepo,
		emailProvider:  emailProvider,
	}
}

// Register - создание админ-пользователя.
// Роль фиксирована: других ролей при регистрации не бывает.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.UserName,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         models.UserRoleAdmin,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return user, nil
}

// Login - аутентификация пользователя и выпуск сессионного токена
func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResult, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Не раскрываем, что именно не совпало
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	cfg := config.GetConfig()
	ttlMinutes := cfg.JWT.TTL
	if req.StaySignedIn {
		ttlMinutes = cfg.JWT.RememberTTL
	}
	ttl := time.Duration(ttlMinutes) * time.Minute

	token, err := auth.GenerateToken(user.ID, string(user.Role), ttl)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResult{
		Token:      token,
		MaxAgeSecs: int(ttl.Seconds()),
		User: dto.UserSummary{
			UserID: user.ID,
			Email:  user.Email,
		},
	}, nil
}

// Me - данные текущего пользователя
func (s *AuthServiceImpl) Me(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// ListUsers - админ-листинг пользователей
func (s *AuthServiceImpl) ListUsers(db *gorm.DB) ([]models.User, error) {
	users, err := s.userRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}

// RequestPasswordReset - выпуск одноразового токена и отправка письма.
// Ошибка отправки письма НЕ считается успехом: поднимаем 500.
func (s *AuthServiceImpl) RequestPasswordReset(db *gorm.DB, userEmail string) error {
	user, err := s.userRepo.FindByEmail(db, userEmail)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	resetToken := &models.PasswordResetToken{
		UserID:    user.ID,
		Token:     auth.GenerateResetToken(),
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.resetTokenRepo.Create(db, resetToken); err != nil {
		return apperrors.InternalError(err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s",
		config.GetConfig().Email.FrontendURL, resetToken.Token)

	if err := s.emailProvider.SendPasswordReset(user.Email, resetLink); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

// ResetPassword - потребление одноразового токена.
// Просроченный или неизвестный токен НЕ удаляется: повторная попытка
// обязана дать тот же детерминированный отказ.
func (s *AuthServiceImpl) ResetPassword(db *gorm.DB, token, newPassword string) error {
	resetToken, err := s.resetTokenRepo.FindByToken(db, token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrResetTokenNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}

	if time.Now().After(resetToken.ExpiresAt) {
		return apperrors.ErrTokenExpired
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	// Смена пароля и погашение токена - одна транзакция
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.UpdatePassword(tx, resetToken.UserID, hashedPassword); err != nil {
			return err
		}
		return s.resetTokenRepo.DeleteByToken(tx, resetToken.Token)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}
