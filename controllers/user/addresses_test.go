package userControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
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
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Address{}, &models.Product{}, &models.Order{}))
	return db
}

func newRouter(db *gorm.DB, userID uint, role models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", string(role))
	})
	r.GET("/users/addresses", GetAddresses(db))
	r.POST("/users/addresses", AddAddress(db))
	r.DELETE("/users/addresses/:id", DeleteAddress(db))
	r.PUT("/users/addresses/:id/default", SetDefaultAddress(db))
	r.GET("/users/profile", GetProfile(db))
	r.PUT("/users/profile", UpdateProfile(db))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func countDefaults(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Address{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Count(&n).Error)
	return n
}

func TestAddAddressDefaultDisplacesPrevious(t *testing.T) {
	db := newTestDB(t)
	r := newRouter(db, 5, models.RoleCustomer)

	w := doJSON(t, r, http.MethodPost, "/users/addresses", AddressInput{FullAddress: "Mikocheni B, Dar es Salaam", IsDefault: true})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, r, http.MethodPost, "/users/addresses", AddressInput{FullAddress: "Kariakoo, Dar es Salaam", IsDefault: true})
	require.Equal(t, http.StatusCreated, w.Code)

	assert.EqualValues(t, 1, countDefaults(t, db, 5))

	var def models.Address
	require.NoError(t, db.Where("user_id = ? AND is_default = ?", 5, true).First(&def).Error)
	assert.Equal(t, "Kariakoo, Dar es Salaam", def.FullAddress)
}

func TestSetDefaultAddressRepairsBadState(t *testing.T) {
	db := newTestDB(t)
	// Two defaults at once should never happen, but the endpoint must
	// converge to exactly one regardless.
	a := models.Address{UserID: 5, FullAddress: "A", IsDefault: true}
	b := models.Address{UserID: 5, FullAddress: "B", IsDefault: true}
	c := models.Address{UserID: 5, FullAddress: "C"}
	require.NoError(t, db.Create(&a).Error)
	require.NoError(t, db.Create(&b).Error)
	require.NoError(t, db.Create(&c).Error)

	r := newRouter(db, 5, models.RoleCustomer)
	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/users/addresses/%d/default", c.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.EqualValues(t, 1, countDefaults(t, db, 5))
	var fresh models.Address
	require.NoError(t, db.First(&fresh, c.ID).Error)
	assert.True(t, fresh.IsDefault)
}

func TestSetDefaultAddressForeignRow(t *testing.T) {
	db := newTestDB(t)
	other := models.Address{UserID: 2, FullAddress: "Not yours", IsDefault: true}
	require.NoError(t, db.Create(&other).Error)

	r := newRouter(db, 5, models.RoleCustomer)
	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/users/addresses/%d/default", other.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The other user's flag is untouched.
	var fresh models.Address
	require.NoError(t, db.First(&fresh, other.ID).Error)
	assert.True(t, fresh.IsDefault)
}

func TestDeleteAddressOwnership(t *testing.T) {
	db := newTestDB(t)
	addr := models.Address{UserID: 5, FullAddress: "Msasani"}
	require.NoError(t, db.Create(&addr).Error)

	stranger := newRouter(db, 9, models.RoleCustomer)
	w := doJSON(t, stranger, http.MethodDelete, fmt.Sprintf("/users/addresses/%d", addr.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	owner := newRouter(db, 5, models.RoleCustomer)
	w = doJSON(t, owner, http.MethodDelete, fmt.Sprintf("/users/addresses/%d", addr.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Address{}).Count(&count)
	assert.Zero(t, count)
}

func TestUpdateProfilePatchesOnlyAllowedFields(t *testing.T) {
	db := newTestDB(t)
	user := models.User{Name: "Juma", Email: "juma@example.com", Password: "x", Role: models.RoleCustomer}
	require.NoError(t, db.Create(&user).Error)

	r := newRouter(db, user.ID, models.RoleCustomer)
	w := doJSON(t, r, http.MethodPut, "/users/profile", map[string]string{
		"display_name": "JumaK",
		"phone":        "+255700000011",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, "JumaK", fresh.DisplayName)
	assert.Equal(t, "+255700000011", fresh.Phone)
	assert.Equal(t, "Juma", fresh.Name, "fields not in the payload stay put")
}

func TestUpdateProfileEmptyBody(t *testing.T) {
	db := newTestDB(t)
	user := models.User{Name: "Asha", Email: "asha@example.com", Password: "x", Role: models.RoleCustomer}
	require.NoError(t, db.Create(&user).Error)

	r := newRouter(db, user.ID, models.RoleCustomer)
	w := doJSON(t, r, http.MethodPut, "/users/profile", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
