package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	attributeControllers "github.com/saghirumohammedsi24-star/DUKA/controllers/attribute"
	"github.com/saghirumohammedsi24-star/DUKA/middleware"
	"github.com/saghirumohammedsi24-star/DUKA/models"
)

// SetupAttributeRoutes registers /api/attributes endpoints.
func SetupAttributeRoutes(api *gin.RouterGroup, db *gorm.DB) {
	attributes := api.Group("/attributes")
	attributes.Use(middleware.Authenticate)
	{
		attributes.GET("", attributeControllers.GetAttributes(db))

		admin := attributes.Group("")
		admin.Use(middleware.Authorize(models.RoleAdmin))
		{
			admin.POST("", attributeControllers.CreateAttribute(db))
			admin.POST("/:id/options", attributeControllers.AddOption(db))
			admin.DELETE("/:id", attributeControllers.DeleteAttribute(db))
			admin.DELETE("/options/:id", attributeControllers.DeleteOption(db))
		}
	}
}
