package orderControllers

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/saghirumohammedsi24-star/DUKA/models"
)

var (
	ErrEmptyOrder        = errors.New("order has no items")
	ErrTotalMismatch     = errors.New("total_price does not match the sum of line items")
	ErrProductNotFound   = errors.New("product does not exist")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type OrderItemInput struct {
	ProductID          uint                       `json:"product_id" binding:"required"`
	Quantity           int                        `json:"quantity" binding:"required,min=1"`
	Price              float64                    `json:"price"` // unit price at purchase, snapshotted as-is
	SelectedAttributes []models.SelectedAttribute `json:"selected_attributes"`
}

type DeliveryData struct {
	Type          string `json:"delivery_type"`
	Location      string `json:"delivery_location"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
}

type PlaceOrderRequest struct {
	Items        []OrderItemInput `json:"items" binding:"required"`
	TotalPrice   float64          `json:"total_price"`
	DeliveryData DeliveryData     `json:"delivery_data"`
}

// CreateOrder places an order as a single all-or-nothing transaction:
// order-number allocation, order insert, line-item inserts and guarded
// stock decrements either all land or none do. Unit prices come from the
// caller and are never re-read from the catalog, so the snapshot survives
// later price changes.
func CreateOrder(db *gorm.DB, userID uint, req PlaceOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	var sum float64
	for _, it := range req.Items {
		if it.Price < 0 {
			return nil, ErrTotalMismatch
		}
		sum += it.Price * float64(it.Quantity)
	}
	// The client computes its own total; accept it only when it agrees
	// with the line items to the cent.
	if math.Abs(sum-req.TotalPrice) > 0.005 {
		return nil, ErrTotalMismatch
	}

	deliveryType := models.DeliveryPickup
	if req.DeliveryData.Type == string(models.DeliveryDelivery) {
		deliveryType = models.DeliveryDelivery
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, models.OrderItem{
			ProductID:          it.ProductID,
			Quantity:           it.Quantity,
			Price:              it.Price,
			SelectedAttributes: models.EncodeSelectedAttributes(it.SelectedAttributes),
		})
	}

	order := &models.Order{
		UserID:           userID,
		TotalPrice:       req.TotalPrice,
		Status:           models.OrderStatusPending,
		DeliveryType:     deliveryType,
		DeliveryLocation: req.DeliveryData.Location,
		CustomerName:     req.DeliveryData.CustomerName,
		CustomerPhone:    req.DeliveryData.CustomerPhone,
		CustomerEmail:    req.DeliveryData.CustomerEmail,
		Items:            items,
		CreatedAt:        time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		number, err := allocateOrderNumber(tx, order.CreatedAt)
		if err != nil {
			return err
		}
		order.OrderNumber = number

		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, it := range req.Items {
			var count int64
			if err := tx.Model(&models.Product{}).Where("id = ?", it.ProductID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrProductNotFound
			}

			// Atomic guarded decrement: zero rows affected means the
			// predicate failed, i.e. stock would have gone negative.
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", it.ProductID, it.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", it.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrInsufficientStock
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// allocateOrderNumber hands out ORD-<year>-<5-digit seq>, scoped per
// calendar year. The counter row is upsert-incremented inside the order
// transaction, so concurrent checkouts serialize on the row and can never
// observe the same value; the read-count-then-format race of a naive
// scheme does not exist here.
func allocateOrderNumber(tx *gorm.DB, now time.Time) (string, error) {
	year := now.Year()

	counter := models.OrderCounter{Year: year, Count: 1}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "year"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("count + 1")}),
	}).Create(&counter).Error; err != nil {
		return "", err
	}
	if err := tx.First(&counter, "year = ?", year).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf("ORD-%d-%05d", year, counter.Count), nil
}

// UpdateStatus moves an order along the transition table. Completed and
// Cancelled are terminal; Cancelled is reachable from any other state.
func UpdateStatus(db *gorm.DB, orderID string, newStatus models.OrderStatus) error {
	var order models.Order
	if err := db.First(&order, "id = ?", orderID).Error; err != nil {
		return err
	}
	if !models.CanTransition(order.Status, newStatus) {
		return fmt.Errorf("cannot move order from %q to %q", order.Status, newStatus)
	}
	return db.Model(&order).Update("status", newStatus).Error
}
