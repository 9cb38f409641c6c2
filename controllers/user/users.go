package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/saghirumohammedsi24-star/DUKA/middleware"
	"github.com/saghirumohammedsi24-star/DUKA/models"
)

type UpdateProfileInput struct {
	Name         *string `json:"name"`
	DisplayName  *string `json:"display_name"`
	ProfilePhoto *string `json:"profile_photo"`
	DOB          *string `json:"dob"`
	Gender       *string `json:"gender"`
	Phone        *string `json:"phone"`
}

// GET /api/users/profile
// Admin profiles carry store-wide stats, customer profiles their own
// order count.
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		if user.Role == models.RoleAdmin {
			var totalUsers, totalProducts, totalOrders int64
			var totalSales float64
			db.Model(&models.User{}).Count(&totalUsers)
			db.Model(&models.Product{}).Count(&totalProducts)
			db.Model(&models.Order{}).Count(&totalOrders)
			db.Model(&models.Order{}).
				Where("status = ?", models.OrderStatusCompleted).
				Select("COALESCE(SUM(total_price), 0)").
				Scan(&totalSales)

			c.JSON(http.StatusOK, gin.H{
				"user": user,
				"admin_stats": gin.H{
					"total_users":    totalUsers,
					"total_products": totalProducts,
					"total_orders":   totalOrders,
					"total_sales":    totalSales,
				},
			})
			return
		}

		var totalOrders int64
		db.Model(&models.Order{}).Where("user_id = ?", userID).Count(&totalOrders)
		c.JSON(http.StatusOK, gin.H{"user": user, "total_orders": totalOrders})
	}
}

// PUT /api/users/profile
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.DisplayName != nil {
			updates["display_name"] = *input.DisplayName
		}
		if input.ProfilePhoto != nil {
			updates["profile_photo"] = *input.ProfilePhoto
		}
		if input.DOB != nil {
			updates["dob"] = *input.DOB
		}
		if input.Gender != nil {
			updates["gender"] = *input.Gender
		}
		if input.Phone != nil {
			updates["phone"] = *input.Phone
		}

		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields provided for update"})
			return
		}

		if err := db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
	}
}
