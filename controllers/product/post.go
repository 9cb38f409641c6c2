package productcontroller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/saghirumohammedsi24-star/DUKA/models"
)

// CreateProduct creates a new product from a multipart form with an
// optional main image, gallery files and linked attribute options.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name and Price are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		stock := 0
		if stockStr := c.PostForm("stock"); stockStr != "" {
			if stock, err = strconv.Atoi(stockStr); err != nil || stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
		}

		category := c.PostForm("category")

		optionIDs, ok := parseOptionIDs(c.PostForm("attribute_option_ids"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attribute_option_ids format"})
			return
		}
		var options []models.AttributeOption
		if len(optionIDs) > 0 {
			if err := db.Where("id IN ?", optionIDs).Find(&options).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attribute options"})
				return
			}
		}

		// Main image
		imageURL := c.PostForm("image_url")
		if file, err := c.FormFile("image"); err == nil {
			if imageURL, err = saveProductImage(c, file); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
		}

		// Gallery files
		var gallery []models.ProductImage
		if form, err := c.MultipartForm(); err == nil {
			for i, file := range form.File["gallery"] {
				url, err := saveProductImage(c, file)
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save gallery image"})
					return
				}
				gallery = append(gallery, models.ProductImage{URL: url, Position: i})
			}
		}

		product := models.Product{
			Name:        name,
			Description: c.PostForm("description"),
			Price:       price,
			Category:    category,
			Stock:       stock,
			ImageURL:    imageURL,
			Gallery:     gallery,
			Options:     options,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			sku, err := generateSKU(tx, category)
			if err != nil {
				return err
			}
			product.SKU = sku
			return tx.Create(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

// parseOptionIDs accepts a JSON-encoded id array ("[1,2,3]") as sent by
// the admin form; empty input is fine.
func parseOptionIDs(raw string) ([]uint, bool) {
	if raw == "" {
		return nil, true
	}
	var ids []uint
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, false
	}
	return ids, true
}
