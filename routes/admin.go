package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	dashboardControllers "github.com/saghirumohammedsi24-star/DUKA/controllers/dashboard"
	orderControllers "github.com/saghirumohammedsi24-star/DUKA/controllers/order"
	productcontroller "github.com/saghirumohammedsi24-star/DUKA/controllers/product"
	"github.com/saghirumohammedsi24-star/DUKA/middleware"
	"github.com/saghirumohammedsi24-star/DUKA/models"
)

// SetupAdminRoutes registers /api/admin endpoints (summary and exports).
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB) {
	admin := api.Group("/admin")
	admin.Use(middleware.Authenticate, middleware.Authorize(models.RoleAdmin))
	{
		admin.GET("/summary", dashboardControllers.GetSummary(db))
		admin.GET("/orders/export", orderControllers.ExportOrdersToExcel(db))
		admin.GET("/products/export", productcontroller.ExportProductsToExcel(db))
	}
}
