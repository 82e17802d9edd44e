package handlers

import (
	"alumni_backend/internal/services"
	"alumni_backend/internal/validator"
)

// AppHandlers объединяет все HTTP-обработчики приложения
type AppHandlers struct {
	Auth   *AuthHandler
	Client *ClientHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:   NewAuthHandler(base, sc.AuthService),
		Client: NewClientHandler(base, sc.ClientService),
	}
}
