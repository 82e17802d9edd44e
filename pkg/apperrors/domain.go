package apperrors

import (
	"net/http"
)

/*
Этот файл содержит фабрики и предопределенные переменные
для общих ошибок бизнес-логики и домена.
*/

// =========================================================================
// Фабричные ФУНКЦИИ (Используются для оборачивания ошибок, напр. из репозитория)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// =========================================================================
// Предопределенные ПЕРЕМЕННЫЕ (Для частых, статичных ошибок)
// =========================================================================

// --- Auth ---

// ErrEmailAlreadyExists - email уже используется другим пользователем.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"User already exists",
	http.StatusConflict, // 409
)

// ErrInvalidCredentials - неверный email или пароль.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized, // 401
)

// ErrInvalidToken - токен отсутствует, не распарсился или не найден в БД.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid token",
	http.StatusBadRequest, // 400 - reset-токен приходит в теле, а не в credentials
)

// ErrTokenExpired - срок действия reset-токена истек.
// Сообщение стабильное: повторные попытки дают тот же детерминированный ответ.
var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Token expired",
	http.StatusBadRequest, // 400
)

// ErrUserNotFound - пользователь не найден.
var ErrUserNotFound = New(
	CodeNotFound,
	"auth",
	"User not found",
	http.StatusNotFound, // 404
)

// --- Clients ---

// ErrClientAlreadyExists - активный клиент с таким email уже существует (addClient).
var ErrClientAlreadyExists = New(
	CodeAlreadyExists,
	"clients",
	"Client already exists",
	http.StatusConflict, // 409
)

// ErrClientEmailTaken - email занят другим клиентом (updateClient).
// Исторически этот роут отвечает 400, а не 409.
var ErrClientEmailTaken = New(
	CodeConflict,
	"clients",
	"Email already exists for another client",
	http.StatusBadRequest, // 400
)

// ErrClientNotFound - клиент не найден или мягко удален.
var ErrClientNotFound = New(
	CodeNotFound,
	"clients",
	"Client not found",
	http.StatusNotFound, // 404
)

// ErrNoMoreResults - запрошенная страница за пределами totalPages.
// Политика API: отвечаем 404, а не пустым списком.
var ErrNoMoreResults = New(
	CodeNotFound,
	"clients",
	"No more results",
	http.StatusNotFound, // 404
)
