package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/saghirumohammedsi24-star/DUKA/controllers/user"
	"github.com/saghirumohammedsi24-star/DUKA/middleware"
)

// SetupUserRoutes registers /api/users profile and address endpoints.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB) {
	users := api.Group("/users")
	users.Use(middleware.Authenticate)
	{
		users.GET("/profile", userControllers.GetProfile(db))
		users.PUT("/profile", userControllers.UpdateProfile(db))

		users.GET("/addresses", userControllers.GetAddresses(db))
		users.POST("/addresses", userControllers.AddAddress(db))
		users.DELETE("/addresses/:id", userControllers.DeleteAddress(db))
		users.PUT("/addresses/:id/default", userControllers.SetDefaultAddress(db))
	}
}
