package dto

// RegisterRequest - запрос создания админ-пользователя
type RegisterRequest struct {
	UserName string `json:"userName" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=10"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`

	// StaySignedIn продлевает сессию до remember-me TTL
	StaySignedIn bool `json:"staySignedIn"`
}

// ForgotPasswordRequest - запрос ссылки сброса пароля
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest - подтверждение сброса пароля
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=10"`
}

// UserSummary - краткая карточка пользователя в ответе логина
type UserSummary struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// LoginResult - результат логина; cookie выставляет хендлер
type LoginResult struct {
	Token      string
	MaxAgeSecs int
	User       UserSummary
}
