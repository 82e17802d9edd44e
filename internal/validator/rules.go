package validator

import (
	"log"

	"alumni_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Если правило не удалось зарегистрировать, приложение
			// не должно запускаться, так как это критическая ошибка.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-client-status': статус выпускника принадлежит закрытому enum.
	// Неизвестный статус отклоняется здесь, а не в слое персистентности.
	mustRegister("is-client-status", validateClientStatus)

	// 'is-user-role': роль пользователя валидна
	mustRegister("is-user-role", validateUserRole)
}

// --- Функции валидации ---

func validateClientStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Не проверяем пустые значения, для этого есть 'required'
	}
	return models.IsValidClientStatus(value)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' обрабатывает пустые
	}
	switch models.UserRole(value) {
	case models.UserRoleAdmin:
		return true
	default:
		return false
	}
}
