package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMenu(t *testing.T) {
	r, _, _ := setupApp(t)

	w := doJSON(t, r, http.MethodGet, "/api/menu", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var items []struct {
		ID       uint   `json:"id"`
		Name     string `json:"name"`
		Price    int    `json:"price"`
		Category string `json:"category"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 15)
	assert.Equal(t, "The NUSH Classic", items[0].Name)
	assert.Equal(t, 899, items[0].Price)
	assert.Equal(t, "Burgers", items[0].Category)
}
