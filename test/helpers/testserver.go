package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"alumni_backend/database"
	"alumni_backend/internal/app"
	"alumni_backend/internal/config"
	"alumni_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// TestServer поднимает приложение поверх in-memory sqlite:
// интеграционные тесты гоняют реальные SQL-запросы без внешнего Postgres.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

var configOnce sync.Once

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	// Конфиг глобальный, грузим один раз: параллельные тесты не должны
	// гонять запись AppConfig
	configOnce.Do(func() {
		// Режим env-конфига: config.yaml в тестах не нужен
		os.Setenv("DATABASE_URL", "file::memory:")
		os.Setenv("JWT_SECRET", "test-secret-key")
		config.LoadConfig()
	})
	cfg := config.GetConfig()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Не удалось открыть in-memory sqlite: %v", err)
	}

	// In-memory БД живет в рамках одного соединения
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Не удалось получить *sql.DB из GORM: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Не удалось выполнить AutoMigrate для тестовой БД: %v", err)
	}

	gin.SetMode(gin.TestMode)
	router := app.SetupRouter(cfg, db)

	server := httptest.NewServer(router)

	return &TestServer{
		Server: server,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// ClearTables очищает все таблицы между тестами.
func (ts *TestServer) ClearTables() {
	tables := []string{
		"password_reset_tokens",
		"recruiteds",
		"furthers",
		"self_employeds",
		"searchings",
		"clients",
		"users",
	}
	for _, table := range tables {
		if err := ts.DB.Exec("DELETE FROM " + table).Error; err != nil {
			panic("Не удалось очистить таблицу " + table + ": " + err.Error())
		}
	}
}

// SendRequest отправляет JSON-запрос. Токен сессии передается cookie,
// как это делает фронтенд.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}

	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}

// SessionCookie достает значение сессионной cookie из ответа логина.
func SessionCookie(res *http.Response) string {
	for _, cookie := range res.Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			return cookie.Value
		}
	}
	return ""
}
