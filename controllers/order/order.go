package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	cartControllers "github.com/saghirumohammedsi24-star/DUKA/controllers/cart"
	"github.com/saghirumohammedsi24-star/DUKA/logger"
	"github.com/saghirumohammedsi24-star/DUKA/middleware"
	"github.com/saghirumohammedsi24-star/DUKA/models"
	"github.com/saghirumohammedsi24-star/DUKA/services"
)

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderItemView joins product display fields onto the stored snapshot.
// Price always comes from the snapshot, never from the catalog.
type OrderItemView struct {
	ID                 uint                       `json:"id"`
	ProductID          uint                       `json:"product_id"`
	Quantity           int                        `json:"quantity"`
	Price              float64                    `json:"price"`
	Name               string                     `json:"name"`
	ImageURL           string                     `json:"image_url"`
	SelectedAttributes []models.SelectedAttribute `json:"selected_attributes,omitempty"`
}

// POST /api/orders
func PlaceOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := CreateOrder(db, userID, req)
		if err != nil {
			switch {
			case errors.Is(err, ErrEmptyOrder),
				errors.Is(err, ErrTotalMismatch),
				errors.Is(err, ErrProductNotFound):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, ErrInsufficientStock):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient stock"})
			default:
				logger.L().Error("Order creation failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		// The order is committed; everything from here on is best-effort
		// and must not fail the checkout response.
		if err := cartControllers.ClearCart(db, userID); err != nil {
			logger.L().Warn("Failed to clear cart after checkout",
				zap.Uint("user_id", userID), zap.Error(err))
		}

		BroadcastOrder(*order)
		go services.DispatchOrderNotifications(db, *order)

		c.JSON(http.StatusCreated, gin.H{
			"message":       "Order placed successfully",
			"orderId":       order.ID,
			"orderNumber":   order.OrderNumber,
			"whatsapp_link": services.BuildWhatsAppLink(db, *order),
			"pdf_url":       services.ReceiptURL(order.OrderNumber),
		})
	}
}

// GET /api/orders/user
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders (admin)
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Model(&models.Order{}).
			Select("orders.*, users.name AS customer_label").
			Joins("JOIN users ON users.id = orders.user_id").
			Order("orders.created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/:id
func GetOrderDetails(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			}
			return
		}

		role, _ := c.Get("role")
		if order.UserID != userID && role != string(models.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		items, err := GetOrderItems(db, order.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order items"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"order": order, "items": items})
	}
}

// GetOrderItems loads an order's line items with product name and image
// joined on for display.
func GetOrderItems(db *gorm.DB, orderID uint) ([]OrderItemView, error) {
	type row struct {
		ID                 uint
		ProductID          uint
		Quantity           int
		Price              float64
		Name               string
		ImageURL           string
		SelectedAttributes string
	}

	var rows []row
	if err := db.Table("order_items").
		Select("order_items.id, order_items.product_id, order_items.quantity, order_items.price, order_items.selected_attributes, products.name, products.image_url").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", orderID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]OrderItemView, 0, len(rows))
	for _, r := range rows {
		views = append(views, OrderItemView{
			ID:                 r.ID,
			ProductID:          r.ProductID,
			Quantity:           r.Quantity,
			Price:              r.Price,
			Name:               r.Name,
			ImageURL:           r.ImageURL,
			SelectedAttributes: models.DecodeSelectedAttributes(r.SelectedAttributes),
		})
	}
	return views, nil
}

// PUT /api/orders/:id/status (admin)
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		newStatus, ok := models.ParseOrderStatus(req.Status)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
			return
		}

		if err := UpdateStatus(db, c.Param("id"), newStatus); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
	}
}
