package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/saghirumohammedsi24-star/DUKA/controllers/cart"
	orderControllers "github.com/saghirumohammedsi24-star/DUKA/controllers/order"
	"github.com/saghirumohammedsi24-star/DUKA/middleware"
	"github.com/saghirumohammedsi24-star/DUKA/models"
)

// SetupCartAndOrderRoutes registers /api/cart and /api/orders endpoints.
// All of them require an authenticated user.
func SetupCartAndOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	cart := api.Group("/cart")
	cart.Use(middleware.Authenticate)
	{
		cart.GET("", cartControllers.GetItems(db))
		cart.POST("", cartControllers.AddItem(db))
		cart.PUT("/:id", cartControllers.UpdateQuantity(db))
		cart.DELETE("/:id", cartControllers.RemoveItem(db))
	}

	orders := api.Group("/orders")
	orders.Use(middleware.Authenticate)
	{
		orders.POST("", orderControllers.PlaceOrder(db))
		orders.GET("/user", orderControllers.GetUserOrders(db))
		orders.GET("/:id", orderControllers.GetOrderDetails(db))

		admin := orders.Group("")
		admin.Use(middleware.Authorize(models.RoleAdmin))
		{
			admin.GET("", orderControllers.GetAllOrders(db))
			admin.PUT("/:id/status", orderControllers.UpdateOrderStatus(db))
			admin.GET("/ws", orderControllers.OrderFeed)
		}
	}
}
