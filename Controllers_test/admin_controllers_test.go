package Controllers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	r, _, _ := setupApp(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/login", map[string]string{
		"username": "admin",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/admin/login", map[string]string{
		"username": "nobody",
		"password": "admin123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminMeAndLogout(t *testing.T) {
	r, _, _ := setupApp(t)
	token := loginAdmin(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/admin/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var me struct {
		Username string `json:"username"`
		Name     string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "admin", me.Username)
	assert.NotContains(t, w.Body.String(), "password")

	w = doJSON(t, r, http.MethodPost, "/api/admin/logout", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	// The blacklisted token no longer works.
	w = doJSON(t, r, http.MethodGet, "/api/admin/me", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDashboardStats(t *testing.T) {
	r, _, _ := setupApp(t)
	token := loginAdmin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/orders", createOrderPayload(), "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/admin/stats", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TotalOrders  int64 `json:"totalOrders"`
		TotalRevenue int64 `json:"totalRevenue"`
		MenuItems    int64 `json:"menuItems"`
		OrderStats   struct {
			Pending int64 `json:"pending"`
		} `json:"orderStats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.TotalOrders)
	assert.Equal(t, int64(1798), stats.TotalRevenue)
	assert.Equal(t, int64(15), stats.MenuItems)
	assert.Equal(t, int64(1), stats.OrderStats.Pending)
}

func TestSalesReportExport(t *testing.T) {
	r, _, _ := setupApp(t)
	token := loginAdmin(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/admin/reports/sales", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"), "response should be a PDF document")
}
