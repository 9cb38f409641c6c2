package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/saghirumohammedsi24-star/DUKA/middleware"
	"github.com/saghirumohammedsi24-star/DUKA/models"
)

type AddressInput struct {
	FullAddress    string `json:"full_address" binding:"required"`
	CityRegionZone string `json:"city_region_zone"`
	PostalCode     string `json:"postal_code"`
	Country        string `json:"country"`
	GPSLocation    string `json:"gps_location"`
	IsDefault      bool   `json:"is_default"`
}

// GET /api/users/addresses
func GetAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var addresses []models.Address
		if err := db.Where("user_id = ?", userID).Find(&addresses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}
		c.JSON(http.StatusOK, addresses)
	}
}

// POST /api/users/addresses
func AddAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		address := models.Address{
			UserID:         userID,
			FullAddress:    input.FullAddress,
			CityRegionZone: input.CityRegionZone,
			PostalCode:     input.PostalCode,
			Country:        input.Country,
			GPSLocation:    input.GPSLocation,
			IsDefault:      input.IsDefault,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if input.IsDefault {
				if err := tx.Model(&models.Address{}).
					Where("user_id = ?", userID).
					Update("is_default", false).Error; err != nil {
					return err
				}
			}
			return tx.Create(&address).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add address"})
			return
		}
		c.JSON(http.StatusCreated, address)
	}
}

// DELETE /api/users/addresses/:id
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		result := db.Where("id = ? AND user_id = ?", c.Param("id"), userID).Delete(&models.Address{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete address"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address deleted successfully"})
	}
}

// PUT /api/users/addresses/:id/default
// Clears every other default first so exactly one row ends up flagged,
// whatever state the user's addresses were in.
func SetDefaultAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var notFound bool
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Address{}).
				Where("user_id = ?", userID).
				Update("is_default", false).Error; err != nil {
				return err
			}
			result := tx.Model(&models.Address{}).
				Where("id = ? AND user_id = ?", c.Param("id"), userID).
				Update("is_default", true)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				notFound = true
				return gorm.ErrRecordNotFound
			}
			return nil
		})
		if err != nil {
			if notFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update default address"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Default address updated"})
	}
}
