package integration_test

import (
	"net/http"
	"testing"

	"alumni_backend/internal/models"
	"alumni_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countOutcomeRows считает строки исходов клиента по всем четырем таблицам
func countOutcomeRows(t *testing.T, ts *helpers.TestServer, clientID string) int64 {
	t.Helper()

	var total int64
	for _, model := range []interface{}{
		&models.Recruited{}, &models.Further{}, &models.SelfEmployed{}, &models.Searching{},
	} {
		var count int64
		require.NoError(t, ts.DB.Model(model).Where("client_id = ?", clientID).Count(&count).Error)
		total += count
	}
	return total
}

// TestAddClient_Recruited - добавление трудоустроенного клиента
func TestAddClient_Recruited(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAdmin(t, ts)
	email := uniqueEmail("client_recruited")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/clients", token,
		helpers.ClientPayload(email, models.ClientStatusRecruited))

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, bodyStr, "Client added successfully")
	assert.Contains(t, bodyStr, `"status":"RECRUITED"`)
	assert.Contains(t, bodyStr, "Kolesa Group")

	// В БД ровно одна строка исхода
	var client models.Client
	require.NoError(t, ts.DB.Where("email = ?", email).First(&client).Error)
	assert.EqualValues(t, 1, countOutcomeRows(t, ts, client.ID))
	t.Logf("ДОБАВЛЕНИЕ: Успешно. Ответ: %s", bodyStr)
}

// TestAddClient_EachStatus - каждый статус создает свой вариант исхода
func TestAddClient_EachStatus(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAdmin(t, ts)

	for _, status := range models.AllClientStatuses {
		email := uniqueEmail("client_" + string(status))
		res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/clients", token,
			helpers.ClientPayload(email, status))

		assert.Equal(t, http.StatusCreated, res.StatusCode, "Статус %s. Ответ: %s", status, bodyStr)
		assert.Contains(t, bodyStr, string(status))
	}
}

// TestAddClient_UnknownStatus - значение вне enum отклоняется валидацией
func TestAddClient_UnknownStatus(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAdmin(t, ts)

	payload := helpers.ClientPayload(uniqueEmail("badstatus"), models.ClientStatusRecruited)
	payload["status"] = "RETIRED"

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/clients", token, payload)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "status")
	t.Logf("НЕИЗВЕСТНЫЙ СТАТУС: Успешно отклонен. Ответ: %s", bodyStr)
}

// TestAddClient_DuplicateEmail - повторный email дает 409
func TestAddClient_DuplicateEmail(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAdmin(t, ts)
	email := uniqueEmail("dup_client")

	helpers.CreateClient(t, ts, token, email, models.ClientStatusSearching)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/clients", token,
		helpers.ClientPayload(email, models.ClientStatusRecruited))

	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "Client already exists")
}

// TestAddClient_NoAuth - без сессии клиент не создается
func TestAddClient_NoAuth(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/clients", "",
		helpers.ClientPayload(uniqueEmail("noauth"), models.ClientStatusSearching))

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

// TestUpdateClient_StatusChange - смена статуса подменяет исход атомарно:
// старые строки исходов удаляются, остается ровно одна новая.
func TestUpdateClient_StatusChange(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAdmin(t, ts)
	email := uniqueEmail("upd_status")

	clientID := helpers.CreateClient(t, ts, token, email, models.ClientStatusSearching)

	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/api/v1/clients/"+clientID, token,
		helpers.ClientPayload(email, models.ClientStatusRecruited))

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Client updated successfully")
	assert.Contains(t, bodyStr, `"status":"RECRUITED"`)

	assert.EqualValues(t, 1, countOutcomeRows(t, ts, clientID),
		"После смены статуса должна остаться ровно одна строка исхода")

	var searchingCount int64
	require.NoError(t, ts.DB.Model(&models.Searching{}).Where("client_id = ?", clientID).Count(&searchingCount).Error)
	assert.EqualValues(t, 0, searchingCount, "Старый исход должен быть удален")
}

// TestUpdateClient_EmailTaken - email другого клиента дает 400
func TestUpdateClient_EmailTaken(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAdmin(t, ts)

	takenEmail := uniqueEmail("taken")
	helpers.CreateClient(t, ts, token, takenEmail, models.ClientStatusSearching)
	victimID := helpers.CreateClient(t, ts, token, uniqueEmail("victim"), models.ClientStatusSearching)

	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/api/v1/clients/"+victimID, token,
		helpers.ClientPayload(takenEmail, models.ClientStatusSearching))

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Email already exists for another client")
}

// TestUpdateClient_SameEmail - свой собственный email конфликтом не считается
func TestUpdateClient_SameEmail(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAdmin(t, ts)
	email := uniqueEmail("same_email")

	clientID := helpers.CreateClient(t, ts, token, email, models.ClientStatusSearching)

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/clients/"+clientID, token,
		helpers.ClientPayload(email, models.ClientStatusFarther))

	assert.Equal(t, http.StatusOK, res.StatusCode)
}

// TestUpdateClient_NotFound - обновление несуществующего клиента
func TestUpdateClient_NotFound(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAdmin(t, ts)

	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/api/v1/clients/no-such-id", token,
		helpers.ClientPayload(uniqueEmail("ghost_upd"), models.ClientStatusSearching))

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "Client not found")
}

// TestDeleteClient_Soft - удаление мягкое: строка остается с deleted_at
func TestDeleteClient_Soft(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAdmin(t, ts)
	email := uniqueEmail("delete_me")

	clientID := helpers.CreateClient(t, ts, token, email, models.ClientStatusSearching)

	res, bodyStr := ts.SendRequest(t, http.MethodDelete, "/api/v1/clients/"+clientID, token, nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Client deleted successfully")

	// Обычные запросы клиента больше не видят
	var count int64
	require.NoError(t, ts.DB.Model(&models.Client{}).Where("id = ?", clientID).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	// Но строка физически на месте
	var unscoped models.Client
	require.NoError(t, ts.DB.Unscoped().Where("id = ?", clientID).First(&unscoped).Error)
	assert.True(t, unscoped.DeletedAt.Valid, "deleted_at должен быть проставлен")

	// Повторное удаление - 404
	againRes, _ := ts.SendRequest(t, http.MethodDelete, "/api/v1/clients/"+clientID, token, nil)
	assert.Equal(t, http.StatusNotFound, againRes.StatusCode)
}

// TestDeleteClient_FreesEmail - после мягкого удаления email можно переиспользовать
func TestDeleteClient_FreesEmail(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAdmin(t, ts)
	email := uniqueEmail("reuse_email")

	clientID := helpers.CreateClient(t, ts, token, email, models.ClientStatusSearching)

	delRes, _ := ts.SendRequest(t, http.MethodDelete, "/api/v1/clients/"+clientID, token, nil)
	require.Equal(t, http.StatusOK, delRes.StatusCode)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/clients", token,
		helpers.ClientPayload(email, models.ClientStatusRecruited))
	assert.Equal(t, http.StatusCreated, res.StatusCode)
}
