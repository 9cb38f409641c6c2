package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	settingsControllers "github.com/saghirumohammedsi24-star/DUKA/controllers/settings"
	"github.com/saghirumohammedsi24-star/DUKA/middleware"
	"github.com/saghirumohammedsi24-star/DUKA/models"
)

// SetupSettingsRoutes registers /api/settings endpoints. Any
// authenticated user may read; writes are admin-only.
func SetupSettingsRoutes(api *gin.RouterGroup, db *gorm.DB) {
	settings := api.Group("/settings")
	settings.Use(middleware.Authenticate)
	{
		settings.GET("", settingsControllers.GetSettings(db))
		settings.POST("", middleware.Authorize(models.RoleAdmin), settingsControllers.UpdateSettings(db))
	}
}
