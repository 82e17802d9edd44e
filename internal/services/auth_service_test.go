package services

import (
	"errors"
	"net/http"
	"os"
	"testing"

	"alumni_backend/internal/config"
	"alumni_backend/internal/email"
	"alumni_backend/internal/models"
	"alumni_backend/internal/repositories"
	"alumni_backend/pkg/apperrors"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	os.Setenv("DATABASE_URL", "file::memory:")
	os.Setenv("JWT_SECRET", "unit-test-secret")
	config.LoadConfig()
	os.Exit(m.Run())
}

// brokenEmailProvider всегда падает: имитирует недоступный SMTP
type brokenEmailProvider struct{}

func (p *brokenEmailProvider) Send(to, subject, htmlBody string) error {
	return errors.New("smtp: connection refused")
}

func (p *brokenEmailProvider) SendPasswordReset(to, resetLink string) error {
	return errors.New("smtp: connection refused")
}

// okEmailProvider молча принимает письма
type okEmailProvider struct {
	lastLink string
}

func (p *okEmailProvider) Send(to, subject, htmlBody string) error { return nil }

func (p *okEmailProvider) SendPasswordReset(to, resetLink string) error {
	p.lastLink = resetLink
	return nil
}

func newServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.PasswordResetToken{}))
	return db
}

func newAuthService(provider email.Provider) AuthService {
	return NewAuthService(
		repositories.NewUserRepository(),
		repositories.NewResetTokenRepository(),
		provider,
	)
}

func TestRequestPasswordReset_MailFailureIsNotSuccess(t *testing.T) {
	db := newServiceTestDB(t)
	svc := newAuthService(&brokenEmailProvider{})

	require.NoError(t, db.Create(&models.User{
		Username:     "Admin",
		Email:        "admin@test.com",
		PasswordHash: "irrelevant",
		Role:         models.UserRoleAdmin,
	}).Error)

	err := svc.RequestPasswordReset(db, "admin@test.com")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode,
		"Ошибка отправки письма поднимается как 500, а не глотается")
}

func TestRequestPasswordReset_LinkCarriesToken(t *testing.T) {
	db := newServiceTestDB(t)
	provider := &okEmailProvider{}
	svc := newAuthService(provider)

	require.NoError(t, db.Create(&models.User{
		Username:     "Admin",
		Email:        "admin@test.com",
		PasswordHash: "irrelevant",
		Role:         models.UserRoleAdmin,
	}).Error)

	require.NoError(t, svc.RequestPasswordReset(db, "admin@test.com"))

	var token models.PasswordResetToken
	require.NoError(t, db.First(&token).Error)
	assert.Contains(t, provider.lastLink, "/reset-password?token="+token.Token)
}
