package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nush-eats/storefront-app/database"
	"github.com/nush-eats/storefront-app/models"
	"github.com/nush-eats/storefront-app/notifier"
	"github.com/nush-eats/storefront-app/router"
	"github.com/nush-eats/storefront-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// TestEndToEndStorefront walks the main flow:
// 1. Admin logs in and connects an observer socket
// 2. Customer submits an order
// 3. Observer receives the NEW_ORDER push
// 4. Admin lists orders and moves the order to confirmed
func TestEndToEndStorefront(t *testing.T) {
	db := setupIntegrationDB(t)
	hub := notifier.NewHub()
	r := router.SetupRouter(db, hub)

	srv := httptest.NewServer(r)
	defer srv.Close()

	token := login(t, srv)

	// Observer socket, token via query param.
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	orderID := submitOrder(t, srv)

	// The push arrives shortly after the HTTP response.
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev struct {
		Type string `json:"type"`
		Data struct {
			ID     uint   `json:"id"`
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &ev))
	assert.Equal(t, notifier.EventNewOrder, ev.Type)
	assert.Equal(t, orderID, ev.Data.ID)
	assert.Equal(t, "pending", ev.Data.Status)

	listOrders(t, srv, token, orderID)
	updateStatus(t, srv, token, orderID)
}

func setupIntegrationDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:integration?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.MenuItem{},
		&models.ContactMessage{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
		&models.Admin{},
	))
	require.NoError(t, database.Seed(db))
	return db
}

func postJSON(t *testing.T, url string, body interface{}, token string) *http.Response {
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func login(t *testing.T, srv *httptest.Server) string {
	resp := postJSON(t, srv.URL+"/api/admin/login", map[string]string{
		"username": "admin",
		"password": "admin123",
	}, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func submitOrder(t *testing.T, srv *httptest.Server) uint {
	resp := postJSON(t, srv.URL+"/api/orders", map[string]interface{}{
		"customer": map[string]interface{}{
			"name":     "Ali Khan",
			"phone":    "03001234567",
			"location": "House 12, Street 4, Lahore",
		},
		"items": []map[string]interface{}{
			{"menuItemId": 1, "quantity": 2, "priceAtTime": 899},
		},
		"totalAmount": 1798,
	}, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID          uint   `json:"id"`
		TotalAmount int    `json:"totalAmount"`
		Status      string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, 1798, created.TotalAmount)
	assert.Equal(t, "pending", created.Status)
	return created.ID
}

func listOrders(t *testing.T, srv *httptest.Server, token string, orderID uint) {
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/orders", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var orders []struct {
		ID    uint `json:"id"`
		Items []struct {
			MenuItem struct {
				Name string `json:"name"`
			} `json:"menuItem"`
		} `json:"items"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&orders))
	require.Len(t, orders, 1)
	assert.Equal(t, orderID, orders[0].ID)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "The NUSH Classic", orders[0].Items[0].MenuItem.Name)
}

func updateStatus(t *testing.T, srv *httptest.Server, token string, orderID uint) {
	payload, err := json.Marshal(map[string]string{"status": "confirmed"})
	require.NoError(t, err)
	url := fmt.Sprintf("%s/api/orders/%d/status", srv.URL, orderID)
	req, err := http.NewRequest(http.MethodPatch, url, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, "confirmed", updated.Status)
}
