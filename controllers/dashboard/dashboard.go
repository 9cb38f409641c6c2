package dashboardControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/saghirumohammedsi24-star/DUKA/models"
)

// GET /api/admin/summary
// Total sales only count Completed orders; cancelled and in-flight
// orders stay out of the figure.
func GetSummary(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalSales float64
		if err := db.Model(&models.Order{}).
			Where("status = ?", models.OrderStatusCompleted).
			Select("COALESCE(SUM(total_price), 0)").
			Scan(&totalSales).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch summary"})
			return
		}

		var totalOrders, totalProducts int64
		if err := db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch summary"})
			return
		}
		if err := db.Model(&models.Product{}).Count(&totalProducts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch summary"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"totalSales":    totalSales,
			"totalOrders":   totalOrders,
			"totalProducts": totalProducts,
		})
	}
}
