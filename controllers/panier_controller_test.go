package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"panier-api/controllers"
	"panier-api/models"
	"panier-api/repositories"
	"panier-api/routes"
	"panier-api/services"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *miniredis.Miniredis) {
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	repo := repositories.NewPanierRepository(client)
	svc := services.NewPanierService(repo)
	ctrl := controllers.NewPanierController(svc)

	router := gin.New()
	routes.SetupRoutes(router, ctrl, client)
	return router, mr
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodePanier(t *testing.T, w *httptest.ResponseRecorder) models.PanierDTO {
	var dto models.PanierDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
	return dto
}

func TestGetPanier_UnknownUserReturnsEmptyCart(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodGet, "/panier/u1", "")
	require.Equal(t, 200, w.Code)

	dto := decodePanier(t, w)
	assert.Equal(t, "u1", dto.UserID)
	assert.Empty(t, dto.Items)
	assert.True(t, dto.Total.IsZero())
}

func TestAddItem_ReturnsUpdatedCart(t *testing.T) {
	router, mr := setupTestRouter(t)

	w := doRequest(router, http.MethodPost, "/panier/u1/items",
		`{"id":5,"nom":"Book","prix":12.50,"quantity":2}`)
	require.Equal(t, 200, w.Code)

	dto := decodePanier(t, w)
	require.Len(t, dto.Items, 1)
	assert.Equal(t, 2, dto.Items[0].Quantity)
	assert.True(t, dto.Total.Equal(decimal.RequireFromString("25.00")))
	assert.True(t, mr.Exists(repositories.KeyFor("u1")))
}

func TestAddItem_InvalidQuantityReturns400(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodPost, "/panier/u3/items",
		`{"id":5,"nom":"Book","prix":12.50,"quantity":-1}`)
	assert.Equal(t, 400, w.Code)
}

func TestAddItem_MalformedBodyReturns400(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodPost, "/panier/u1/items", `{"quantity":`)
	assert.Equal(t, 400, w.Code)
}

func TestUpdateItemQuantity_NoCartReturns404(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodPut, "/panier/u2/items/99", `{"quantity":1}`)
	assert.Equal(t, 404, w.Code)
}

func TestUpdateItemQuantity_NonNumericProductIDReturns400(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodPut, "/panier/u1/items/abc", `{"quantity":1}`)
	assert.Equal(t, 400, w.Code)
}

func TestUpdateItemQuantity_ZeroDeletesRecord(t *testing.T) {
	router, mr := setupTestRouter(t)

	w := doRequest(router, http.MethodPost, "/panier/u1/items",
		`{"id":5,"nom":"Book","prix":12.50,"quantity":2}`)
	require.Equal(t, 200, w.Code)

	w = doRequest(router, http.MethodPut, "/panier/u1/items/5", `{"quantity":0}`)
	require.Equal(t, 200, w.Code)

	dto := decodePanier(t, w)
	assert.Empty(t, dto.Items)
	assert.False(t, mr.Exists(repositories.KeyFor("u1")))
}

func TestRemoveItem_UnknownProductReturnsUnchangedCart(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodPost, "/panier/u1/items",
		`{"id":5,"nom":"Book","prix":12.50,"quantity":2}`)
	require.Equal(t, 200, w.Code)

	w = doRequest(router, http.MethodDelete, "/panier/u1/items/99", "")
	require.Equal(t, 200, w.Code)

	dto := decodePanier(t, w)
	require.Len(t, dto.Items, 1)
	assert.Equal(t, 2, dto.Items[0].Quantity)
}

func TestClearPanier_Returns204(t *testing.T) {
	router, mr := setupTestRouter(t)

	w := doRequest(router, http.MethodPost, "/panier/u1/items",
		`{"id":5,"nom":"Book","prix":12.50,"quantity":2}`)
	require.Equal(t, 200, w.Code)

	w = doRequest(router, http.MethodDelete, "/panier/u1", "")
	assert.Equal(t, 204, w.Code)
	assert.False(t, mr.Exists(repositories.KeyFor("u1")))

	// clearing again still succeeds
	w = doRequest(router, http.MethodDelete, "/panier/u1", "")
	assert.Equal(t, 204, w.Code)
}

func TestHealth(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodGet, "/health", "")
	require.Equal(t, 200, w.Code)

	var health models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "connected", health.Redis)
}
