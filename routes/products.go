package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/saghirumohammedsi24-star/DUKA/controllers/product"
	"github.com/saghirumohammedsi24-star/DUKA/middleware"
	"github.com/saghirumohammedsi24-star/DUKA/models"
)

// SetupProductRoutes registers /api/products endpoints. Reads are public,
// writes are admin-only.
func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB) {
	products := api.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/:id", productcontroller.GetProductByID(db))

		admin := products.Group("")
		admin.Use(middleware.Authenticate, middleware.Authorize(models.RoleAdmin))
		{
			admin.POST("", productcontroller.CreateProduct(db))
			admin.PUT("/:id", productcontroller.UpdateProduct(db))
			admin.DELETE("/:id", productcontroller.DeleteProduct(db))
		}
	}
}
