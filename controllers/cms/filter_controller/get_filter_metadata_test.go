package filter_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rash6677/kpi-optimisation-dashboard/cache"
	"github.com/rash6677/kpi-optimisation-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGetFilterMetadata(t *testing.T) {
	dataset_cache.Set([]models.Order{
		{OrderID: "o1", OrderDate: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), CustomerID: "c1", CustomerCity: "Pune", ProductCategory: "Books", PaymentMethod: "UPI", FinalPrice: 300},
		{OrderID: "o2", OrderDate: time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC), CustomerID: "c2", CustomerCity: "Delhi", ProductCategory: "Fashion", PaymentMethod: "Wallet", FinalPrice: 800},
	}, false)
	t.Cleanup(dataset_cache.Invalidate)

	router := gin.New()
	router.GET("/filters/metadata", GetFilterMetadata)

	req, err := http.NewRequest(http.MethodGet, "/filters/metadata", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Message string                `json:"message"`
		Data    models.FilterMetadata `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "Filter metadata fetched", body.Message)
	assert.Equal(t, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), body.Data.DateMin)
	assert.Equal(t, time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC), body.Data.DateMax)
	assert.Equal(t, []string{"Books", "Fashion"}, body.Data.Categories)
	assert.Equal(t, []string{"Delhi", "Pune"}, body.Data.Cities)
	assert.False(t, body.Data.OrderHourAvailable)
	assert.WithinDuration(t, time.Now(), body.Data.DatasetLoadedAt, time.Minute)
}
