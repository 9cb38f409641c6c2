package orderControllers

import (
	"fmt"
	"strings"
	"testing"
	"time"

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
		&models.User{}, &models.Product{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{}, &models.OrderCounter{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: price, Stock: stock, SKU: "GEN-" + name}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestCreateOrder(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Kanga", 15000, 10)

	req := PlaceOrderRequest{
		Items: []OrderItemInput{{
			ProductID: product.ID,
			Quantity:  3,
			Price:     15000,
			SelectedAttributes: []models.SelectedAttribute{
				{Name: "Color", Value: "Blue"},
				{Name: "Size", Value: "M"},
			},
		}},
		TotalPrice: 45000,
		DeliveryData: DeliveryData{
			Type:         "Pickup",
			CustomerName: "Asha",
		},
	}

	order, err := CreateOrder(db, 1, req)
	require.NoError(t, err)

	year := time.Now().Year()
	assert.Equal(t, fmt.Sprintf("ORD-%d-00001", year), order.OrderNumber)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.DeliveryPickup, order.DeliveryType)

	var fresh models.Product
	require.NoError(t, db.First(&fresh, product.ID).Error)
	assert.Equal(t, 7, fresh.Stock)

	var items []models.OrderItem
	require.NoError(t, db.Where("order_id = ?", order.ID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, 15000.0, items[0].Price)

	attrs := models.DecodeSelectedAttributes(items[0].SelectedAttributes)
	require.Len(t, attrs, 2)
	assert.Equal(t, "Color", attrs[0].Name)
	assert.Equal(t, "Blue", attrs[0].Value)
}

func TestCreateOrderSequentialNumbers(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Kitenge", 100, 50)

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		order, err := CreateOrder(db, 1, PlaceOrderRequest{
			Items:      []OrderItemInput{{ProductID: product.ID, Quantity: 1, Price: 100}},
			TotalPrice: 100,
		})
		require.NoError(t, err)
		assert.Regexp(t, `^ORD-\d{4}-\d{5}$`, order.OrderNumber)
		assert.False(t, seen[order.OrderNumber], "order number %s issued twice", order.OrderNumber)
		seen[order.OrderNumber] = true
	}

	year := time.Now().Year()
	assert.True(t, seen[fmt.Sprintf("ORD-%d-00003", year)])
}

func TestCreateOrderEmpty(t *testing.T) {
	db := newTestDB(t)

	_, err := CreateOrder(db, 1, PlaceOrderRequest{})
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestCreateOrderTotalMismatch(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Mug", 2000, 5)

	_, err := CreateOrder(db, 1, PlaceOrderRequest{
		Items:      []OrderItemInput{{ProductID: product.ID, Quantity: 2, Price: 2000}},
		TotalPrice: 3500, // items sum to 4000
	})
	assert.ErrorIs(t, err, ErrTotalMismatch)

	var fresh models.Product
	require.NoError(t, db.First(&fresh, product.ID).Error)
	assert.Equal(t, 5, fresh.Stock)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Radio", 30000, 2)

	_, err := CreateOrder(db, 1, PlaceOrderRequest{
		Items:      []OrderItemInput{{ProductID: product.ID, Quantity: 5, Price: 30000}},
		TotalPrice: 150000,
	})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	var fresh models.Product
	require.NoError(t, db.First(&fresh, product.ID).Error)
	assert.Equal(t, 2, fresh.Stock, "failed order must not touch stock")

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count, "failed order must not leave partial rows")
}

func TestCreateOrderRollbackIsAllOrNothing(t *testing.T) {
	db := newTestDB(t)
	ok := seedProduct(t, db, "Shirt", 5000, 10)
	short := seedProduct(t, db, "Shoes", 20000, 1)

	_, err := CreateOrder(db, 1, PlaceOrderRequest{
		Items: []OrderItemInput{
			{ProductID: ok.ID, Quantity: 2, Price: 5000},
			{ProductID: short.ID, Quantity: 3, Price: 20000},
		},
		TotalPrice: 70000,
	})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	var first models.Product
	require.NoError(t, db.First(&first, ok.ID).Error)
	assert.Equal(t, 10, first.Stock, "earlier decrements must roll back too")

	var itemCount int64
	db.Model(&models.OrderItem{}).Count(&itemCount)
	assert.Zero(t, itemCount)
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	db := newTestDB(t)

	_, err := CreateOrder(db, 1, PlaceOrderRequest{
		Items:      []OrderItemInput{{ProductID: 999, Quantity: 1, Price: 100}},
		TotalPrice: 100,
	})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestOrderItemPriceSurvivesCatalogChange(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Lamp", 8000, 4)

	order, err := CreateOrder(db, 1, PlaceOrderRequest{
		Items:      []OrderItemInput{{ProductID: product.ID, Quantity: 1, Price: 8000}},
		TotalPrice: 8000,
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", product.ID).
		Update("price", 9999).Error)

	items, err := GetOrderItems(db, order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 8000.0, items[0].Price, "stored snapshot, not the live catalog price")
	assert.Equal(t, "Lamp", items[0].Name)
}

func TestAllocateOrderNumberScopedPerYear(t *testing.T) {
	db := newTestDB(t)

	thisYear := time.Now()
	lastYear := thisYear.AddDate(-1, 0, 0)

	n1, err := allocateOrderNumber(db, lastYear)
	require.NoError(t, err)
	n2, err := allocateOrderNumber(db, thisYear)
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("ORD-%d-00001", lastYear.Year()), n1)
	assert.Equal(t, fmt.Sprintf("ORD-%d-00001", thisYear.Year()), n2, "each year has its own sequence")
}

func TestUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Chair", 12000, 3)

	order, err := CreateOrder(db, 1, PlaceOrderRequest{
		Items:      []OrderItemInput{{ProductID: product.ID, Quantity: 1, Price: 12000}},
		TotalPrice: 12000,
	})
	require.NoError(t, err)
	id := fmt.Sprint(order.ID)

	// Skipping ahead is rejected
	err = UpdateStatus(db, id, models.OrderStatusCompleted)
	assert.Error(t, err)

	require.NoError(t, UpdateStatus(db, id, models.OrderStatusPaymentConfirm))
	require.NoError(t, UpdateStatus(db, id, models.OrderStatusReady))
	require.NoError(t, UpdateStatus(db, id, models.OrderStatusCancelled))

	// Cancelled is terminal
	err = UpdateStatus(db, id, models.OrderStatusReady)
	assert.Error(t, err)

	var fresh models.Order
	require.NoError(t, db.First(&fresh, order.ID).Error)
	assert.Equal(t, models.OrderStatusCancelled, fresh.Status)
}
