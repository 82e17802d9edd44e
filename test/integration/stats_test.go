package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"alumni_backend/internal/models"
	"alumni_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statsResponse struct {
	TotalClients int64 `json:"totalClients"`
	SoftwareDevelopment struct {
		Count      int64   `json:"count"`
		Percentage float64 `json:"percentage"`
	} `json:"softwareDevelopment"`
	DataScience struct {
		Count      int64   `json:"count"`
		Percentage float64 `json:"percentage"`
	} `json:"dataScience"`
	CreativeTechnologies struct {
		Count      int64   `json:"count"`
		Percentage float64 `json:"percentage"`
	} `json:"creativeTechnologies"`
}

// TestGetStats - распределение клиентов по направлениям
func TestGetStats(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, _ := helpers.CreateAdmin(t, ts)

	// 2 из Software Development, 1 из Data Science, 1 из Creative Technologies
	for i, eduID := range []string{"EDU001", "EDU001", "EDU002", "EDU003"} {
		payload := helpers.ClientPayload(fmt.Sprintf("stats_%d@test.com", i), models.ClientStatusSearching)
		payload["educationId"] = eduID
		res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/clients", token, payload)
		require.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)
	}

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/clients/stats", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)

	var stats statsResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &stats))

	assert.EqualValues(t, 4, stats.TotalClients)
	assert.EqualValues(t, 2, stats.SoftwareDevelopment.Count)
	assert.InDelta(t, 50.0, stats.SoftwareDevelopment.Percentage, 0.001)
	assert.EqualValues(t, 1, stats.DataScience.Count)
	assert.InDelta(t, 25.0, stats.DataScience.Percentage, 0.001)
	assert.EqualValues(t, 1, stats.CreativeTechnologies.Count)
	assert.InDelta(t, 25.0, stats.CreativeTechnologies.Percentage, 0.001)
}

// TestGetStats_Empty - без клиентов проценты нулевые, без деления на ноль
func TestGetStats_Empty(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, _ := helpers.CreateAdmin(t, ts)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/clients/stats", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var stats statsResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &stats))

	assert.EqualValues(t, 0, stats.TotalClients)
	assert.Zero(t, stats.SoftwareDevelopment.Percentage)
	assert.Zero(t, stats.DataScience.Percentage)
	assert.Zero(t, stats.CreativeTechnologies.Percentage)
}

// TestGetStats_IgnoresDeleted - мягко удаленные клиенты в статистику не входят
func TestGetStats_IgnoresDeleted(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	defer ts.Close()

	token, _ := helpers.CreateAdmin(t, ts)

	helpers.CreateClient(t, ts, token, "stay@test.com", models.ClientStatusSearching)
	goneID := helpers.CreateClient(t, ts, token, "gone@test.com", models.ClientStatusSearching)

	delRes, _ := ts.SendRequest(t, http.MethodDelete, "/api/v1/clients/"+goneID, token, nil)
	require.Equal(t, http.StatusOK, delRes.StatusCode)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/clients/stats", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var stats statsResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &stats))

	assert.EqualValues(t, 1, stats.TotalClients)
	assert.EqualValues(t, 1, stats.SoftwareDevelopment.Count)
	assert.InDelta(t, 100.0, stats.SoftwareDevelopment.Percentage, 0.001)
}
