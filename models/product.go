package models

import "time"

type Product struct {
	ID          uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	SKU         string            `gorm:"uniqueIndex" json:"sku"` // e.g. ELE-0007, generated from the category prefix
	Name        string            `gorm:"not null" json:"name"`
	Description string            `json:"description"`
	Price       float64           `gorm:"not null" json:"price"`
	Category    string            `gorm:"index" json:"category"`
	Stock       int               `gorm:"default:0" json:"stock"`
	ImageURL    string            `json:"image_url"`
	Gallery     []ProductImage    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"gallery"`
	Options     []AttributeOption `gorm:"many2many:product_options;constraint:OnDelete:CASCADE" json:"options,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"index" json:"product_id"`
	URL       string `gorm:"not null" json:"url"`
	Position  int    `json:"position"` // gallery display order
}

// ProductCounter backs SKU generation: one row per category prefix,
// incremented inside the product-create transaction.
type ProductCounter struct {
	Prefix string `gorm:"primaryKey;size:8"`
	Count  int    `gorm:"not null"`
}
