package services

import (
	"alumni_backend/internal/email"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService   AuthService
	ClientService ClientService
	EmailService  email.Provider
}
