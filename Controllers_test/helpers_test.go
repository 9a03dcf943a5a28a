package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
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
	m.Run()
}

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
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

func setupApp(t *testing.T) (*gin.Engine, *notifier.Hub, *gorm.DB) {
	db := setupTestDB(t)
	hub := notifier.NewHub()
	return router.SetupRouter(db, hub), hub, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// loginAdmin logs in with the seeded bootstrap credentials.
func loginAdmin(t *testing.T, r *gin.Engine) string {
	w := doJSON(t, r, http.MethodPost, "/api/admin/login", map[string]string{
		"username": "admin",
		"password": "admin123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func createOrderPayload() map[string]interface{} {
	return map[string]interface{}{
		"customer": map[string]interface{}{
			"name":     "Ali Khan",
			"phone":    "03001234567",
			"location": "House 12, Street 4, Lahore",
		},
		"items": []map[string]interface{}{
			{"menuItemId": 1, "quantity": 2, "priceAtTime": 899},
		},
		"totalAmount": 1798,
	}
}
