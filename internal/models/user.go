package models

import "time"

type User struct {
	BaseModel
	Username     string   `gorm:"not null" json:"userName"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`
	AvatarURL    string   `json:"avatarUrl,omitempty"`

	// Relations
	ResetTokens []PasswordResetToken `gorm:"foreignKey:UserID" json:"-"`
}

// PasswordResetToken - одноразовый токен сброса пароля.
// Удаляется только при УСПЕШНОМ сбросе; просроченный токен остается в БД,
// чтобы повторные попытки давали тот же детерминированный отказ.
type PasswordResetToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
