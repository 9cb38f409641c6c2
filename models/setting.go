package models

// Setting is one keyed configuration value, optionally grouped by
// category ("Email", "WhatsApp", ...). Read fresh per operation, never
// cached process-wide.
type Setting struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Key      string `gorm:"column:key;uniqueIndex;not null" json:"key"`
	Value    string `json:"value"`
	Category string `gorm:"index" json:"category"`
}
