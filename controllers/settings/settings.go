package settingsControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/saghirumohammedsi24-star/DUKA/models"
)

// GET /api/settings?category=
func GetSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Setting{})
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}

		var settings []models.Setting
		if err := query.Find(&settings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// POST /api/settings (admin)
// Body is a flat {key: value} map; each entry is upserted on its key.
func UpdateSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var updates map[string]string
		if err := c.ShouldBindJSON(&updates); err != nil || len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No settings provided"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			for key, value := range updates {
				setting := models.Setting{Key: key, Value: value}
				if err := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "key"}},
					DoUpdates: clause.AssignmentColumns([]string{"value"}),
				}).Create(&setting).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Settings updated successfully"})
	}
}
