package contextkeys

// ContextKey - тип ключей контекста, чтобы не конфликтовать со строками других пакетов
type ContextKey string

const (
	// DBContextKey - ключ, под которым middleware кладет *gorm.DB (пул или транзакцию)
	DBContextKey ContextKey = "db"

	// UserIDContextKey - ключ аутентифицированного пользователя
	UserIDContextKey ContextKey = "userID"

	// RoleContextKey - ключ роли аутентифицированного пользователя
	RoleContextKey ContextKey = "role"
)
