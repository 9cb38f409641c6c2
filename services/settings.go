package services

import (
	"gorm.io/gorm"

	"github.com/saghirumohammedsi24-star/DUKA/models"
)

// loadSettings reads the settings table into a key→value map. Settings
// are read fresh on every operation that needs them so concurrent
// requests never see stale values.
func loadSettings(db *gorm.DB) map[string]string {
	var rows []models.Setting
	if err := db.Find(&rows).Error; err != nil {
		return map[string]string{}
	}
	settings := make(map[string]string, len(rows))
	for _, s := range rows {
		settings[s.Key] = s.Value
	}
	return settings
}

func loadSettingsByCategory(db *gorm.DB, category string) map[string]string {
	var rows []models.Setting
	if err := db.Where("category = ?", category).Find(&rows).Error; err != nil {
		return map[string]string{}
	}
	settings := make(map[string]string, len(rows))
	for _, s := range rows {
		settings[s.Key] = s.Value
	}
	return settings
}
