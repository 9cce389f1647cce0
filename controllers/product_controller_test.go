package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"gin-swiftmart/models"
	"gin-swiftmart/repositories"
	"gin-swiftmart/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProductRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)

	repository := repositories.NewProductRepository(db)
	service := services.NewProductService(repository)
	controller := NewProductController(service)

	r := newTestEngine()
	r.GET("/products", controller.FindAll)
	r.POST("/add-products", controller.Seed)
	return r, db
}

func TestSeedProducts(t *testing.T) {
	r, db := setupProductRouter(t)

	w := performRequest(r, http.MethodPost, "/add-products", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Products added"}`, w.Body.String())

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.Equal(t, int64(4), count)
}

func TestSeedProductsIsIdempotent(t *testing.T) {
	r, db := setupProductRouter(t)

	w := performRequest(r, http.MethodPost, "/add-products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var before []models.Product
	require.NoError(t, db.Find(&before).Error)

	w = performRequest(r, http.MethodPost, "/add-products", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Products already added"}`, w.Body.String())

	var after []models.Product
	require.NoError(t, db.Find(&after).Error)
	assert.Equal(t, before, after)
}

func TestFindAllProducts(t *testing.T) {
	r, _ := setupProductRouter(t)

	w := performRequest(r, http.MethodPost, "/add-products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, http.MethodGet, "/products", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Products []models.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Len(t, res.Products, 4)

	names := []string{}
	for _, p := range res.Products {
		assert.NotZero(t, p.ID)
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"Lays", "Milk", "Bread", "penuts"}, names)
}

func TestFindAllProductsEmptyCatalog(t *testing.T) {
	r, _ := setupProductRouter(t)

	w := performRequest(r, http.MethodGet, "/products", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Products []models.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Empty(t, res.Products)
}
