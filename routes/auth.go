package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authControllers "github.com/saghirumohammedsi24-star/DUKA/controllers/auth"
	"github.com/saghirumohammedsi24-star/DUKA/middleware"
)

// SetupAuthRoutes registers /api/auth endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(db))
		authGroup.POST("/login", authControllers.Login(db))
		authGroup.GET("/me", middleware.Authenticate, authControllers.Me(db))
	}
}
