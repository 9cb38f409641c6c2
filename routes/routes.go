package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up all /api route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")

	SetupAuthRoutes(api, db)
	SetupProductRoutes(api, db)
	SetupCartAndOrderRoutes(api, db)
	SetupUserRoutes(api, db)
	SetupAttributeRoutes(api, db)
	SetupSettingsRoutes(api, db)
	SetupAdminRoutes(api, db)
}
