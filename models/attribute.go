package models

// Attribute is a product variant axis (Color, Size...). Deleting an
// attribute cascades to its options, and through the join table to any
// product links.
type Attribute struct {
	ID      uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string            `gorm:"unique;not null" json:"name"`
	Options []AttributeOption `gorm:"foreignKey:AttributeID;constraint:OnDelete:CASCADE" json:"options"`
}

type AttributeOption struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	AttributeID uint   `gorm:"index;not null" json:"attribute_id"`
	Value       string `gorm:"not null" json:"value"`
	MediaURL    string `json:"media_url"`
	MediaType   string `gorm:"type:VARCHAR(10);default:'text'" json:"media_type"` // "text" or "image"
}
