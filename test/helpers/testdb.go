package helpers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"alumni_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser создает пользователя напрямую в БД с хешированием пароля
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) {
	t.Helper()

	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}
	if user.Role == "" {
		user.Role = models.UserRoleAdmin
	}

	require.NoError(t, db.Create(user).Error, "Создание тестового пользователя не должно вызывать ошибку")
}

// CreateAndLoginUser создает пользователя и логинит его через API.
// Возвращает значение сессионной cookie.
func CreateAndLoginUser(t *testing.T, ts *TestServer, userName, email, password string) (string, *models.User) {
	t.Helper()

	user := &models.User{
		Username:     userName,
		Email:        email,
		PasswordHash: password, // Сырой пароль, CreateUser захеширует
	}
	CreateUser(t, ts.DB, user)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	token := SessionCookie(res)
	assert.NotEmpty(t, token, "Сессионная cookie не должна быть пустой")

	return token, user
}

// CreateAdmin создает и логинит админа с уникальным email
func CreateAdmin(t *testing.T, ts *TestServer) (string, *models.User) {
	t.Helper()

	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, "Test Admin", email, "password1234")
}

// ClientPayload собирает валидное тело запроса добавления клиента
func ClientPayload(email string, status models.ClientStatus) map[string]interface{} {
	payload := map[string]interface{}{
		"firstName":    "Aliya",
		"lastName":     "Bekova",
		"email":        email,
		"phone":        "+77011234567",
		"educationId":  "EDU001",
		"academicYear": "2024",
		"status":       string(status),
	}

	switch status {
	case models.ClientStatusRecruited:
		payload["title"] = "Backend Developer"
		payload["company"] = "Kolesa Group"
		payload["position"] = "Junior"
		payload["startYear"] = "2025"
		payload["workCity"] = "Almaty"
	case models.ClientStatusFarther:
		payload["school"] = "Nazarbayev University"
		payload["furtherEd"] = "MSc Computer Science"
		payload["city"] = "Astana"
	case models.ClientStatusEmployed:
		payload["selfEmployed"] = "Freelance web studio"
	case models.ClientStatusSearching:
		payload["duration"] = "3 months"
	}

	return payload
}

// CreateClient создает клиента через API и возвращает его ID
func CreateClient(t *testing.T, ts *TestServer, token, email string, status models.ClientStatus) string {
	t.Helper()

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/clients", token, ClientPayload(email, status))
	require.Equal(t, http.StatusCreated, res.StatusCode, "Создание клиента должно быть успешным. Ответ: "+bodyStr)

	var client models.Client
	require.NoError(t, ts.DB.Where("email = ?", email).First(&client).Error)
	return client.ID
}
