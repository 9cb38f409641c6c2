package productcontroller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/saghirumohammedsi24-star/DUKA/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{}, &models.ProductImage{}, &models.ProductCounter{},
		&models.Attribute{}, &models.AttributeOption{},
	))
	return db
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/products", GetProducts(db))
	r.GET("/products/:id", GetProductByID(db))
	r.POST("/products", CreateProduct(db))
	r.DELETE("/products/:id", DeleteProduct(db))
	return r
}

func TestSKUPrefix(t *testing.T) {
	assert.Equal(t, "ELE", skuPrefix("Electronics"))
	assert.Equal(t, "HOM", skuPrefix("home & living"))
	assert.Equal(t, "GEN", skuPrefix(""))
	assert.Equal(t, "GEN", skuPrefix("TV"))
	assert.Equal(t, "GEN", skuPrefix("123"))
}

func TestGenerateSKUSequencesPerPrefix(t *testing.T) {
	db := newTestDB(t)

	s1, err := generateSKU(db, "Electronics")
	require.NoError(t, err)
	s2, err := generateSKU(db, "Electronics")
	require.NoError(t, err)
	s3, err := generateSKU(db, "Fashion")
	require.NoError(t, err)

	assert.Equal(t, "ELE-0001", s1)
	assert.Equal(t, "ELE-0002", s2)
	assert.Equal(t, "FAS-0001", s3, "each prefix has its own counter")
}

func TestCreateProduct(t *testing.T) {
	db := newTestDB(t)
	t.Setenv("PUBLIC_DIR", t.TempDir())
	r := newRouter(db)

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	require.NoError(t, form.WriteField("name", "Bluetooth Speaker"))
	require.NoError(t, form.WriteField("price", "85000"))
	require.NoError(t, form.WriteField("stock", "12"))
	require.NoError(t, form.WriteField("category", "Electronics"))
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/products", body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "ELE-0001", created.SKU)
	assert.Equal(t, 12, created.Stock)
	assert.Equal(t, 85000.0, created.Price)
}

func TestCreateProductValidation(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	cases := []map[string]string{
		{"price": "100"},                            // missing name
		{"name": "X"},                               // missing price
		{"name": "X", "price": "-5"},                // negative price
		{"name": "X", "price": "10", "stock": "-1"}, // negative stock
	}
	for _, fields := range cases {
		body := &bytes.Buffer{}
		form := multipart.NewWriter(body)
		for k, v := range fields {
			require.NoError(t, form.WriteField(k, v))
		}
		require.NoError(t, form.Close())

		req := httptest.NewRequest(http.MethodPost, "/products", body)
		req.Header.Set("Content-Type", form.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "fields: %v", fields)
	}
}

func TestGetProductsFilters(t *testing.T) {
	db := newTestDB(t)
	for _, p := range []models.Product{
		{Name: "Bluetooth Speaker", Price: 85000, Category: "Electronics", SKU: "ELE-0001"},
		{Name: "LED Lamp", Price: 20000, Category: "Electronics", SKU: "ELE-0002"},
		{Name: "Kanga", Price: 15000, Category: "Fashion", SKU: "FAS-0001"},
	} {
		require.NoError(t, db.Create(&p).Error)
	}
	r := newRouter(db)

	get := func(path string) []models.Product {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		var products []models.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
		return products
	}

	assert.Len(t, get("/products"), 3)
	assert.Len(t, get("/products?category=Electronics"), 2)

	found := get("/products?search=Lamp")
	require.Len(t, found, 1)
	assert.Equal(t, "LED Lamp", found[0].Name)

	assert.Len(t, get("/products?category=Fashion&search=Kanga"), 1)
	assert.Empty(t, get("/products?category=Fashion&search=Lamp"))
}

func TestGetProductByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db)

	req := httptest.NewRequest(http.MethodGet, "/products/999", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/products/abc", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteProductCleansUp(t *testing.T) {
	db := newTestDB(t)
	attribute := models.Attribute{Name: "Color"}
	require.NoError(t, db.Create(&attribute).Error)
	option := models.AttributeOption{AttributeID: attribute.ID, Value: "Red", MediaType: "text"}
	require.NoError(t, db.Create(&option).Error)

	product := models.Product{
		Name: "Shirt", Price: 5000, Stock: 3, SKU: "GEN-0001",
		Gallery: []models.ProductImage{{URL: "/public/uploads/products/a.jpg", Position: 0}},
		Options: []models.AttributeOption{option},
	}
	require.NoError(t, db.Create(&product).Error)

	r := newRouter(db)
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/products/%d", product.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var productCount, imageCount, joinCount int64
	db.Model(&models.Product{}).Count(&productCount)
	db.Model(&models.ProductImage{}).Count(&imageCount)
	db.Table("product_options").Count(&joinCount)
	assert.Zero(t, productCount)
	assert.Zero(t, imageCount, "gallery rows go with the product")
	assert.Zero(t, joinCount, "option links go with the product")

	var optionCount int64
	db.Model(&models.AttributeOption{}).Count(&optionCount)
	assert.EqualValues(t, 1, optionCount, "the option itself stays")
}
