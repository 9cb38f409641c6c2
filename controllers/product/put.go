package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/saghirumohammedsi24-star/DUKA/models"
)

// UpdateProduct overwrites a product row with the submitted form values.
// Absent fields reset to their zero values (the admin form always submits
// the full row); the gallery is only replaced when new files are supplied.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

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

		optionIDs, ok := parseOptionIDs(c.PostForm("attribute_option_ids"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attribute_option_ids format"})
			return
		}

		imageURL := c.PostForm("image_url")
		if file, fileErr := c.FormFile("image"); fileErr == nil {
			if imageURL, err = saveProductImage(c, file); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}
		}

		// New gallery files replace the old set wholesale.
		var newGallery []models.ProductImage
		if form, formErr := c.MultipartForm(); formErr == nil {
			for i, file := range form.File["gallery"] {
				url, saveErr := saveProductImage(c, file)
				if saveErr != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save gallery image"})
					return
				}
				newGallery = append(newGallery, models.ProductImage{ProductID: product.ID, URL: url, Position: i})
			}
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			updates := map[string]interface{}{
				"name":        name,
				"description": c.PostForm("description"),
				"price":       price,
				"category":    c.PostForm("category"),
				"stock":       stock,
				"image_url":   imageURL,
			}
			if err := tx.Model(&product).Updates(updates).Error; err != nil {
				return err
			}

			if optionIDs != nil {
				var options []models.AttributeOption
				if err := tx.Where("id IN ?", optionIDs).Find(&options).Error; err != nil {
					return err
				}
				if err := tx.Model(&product).Association("Options").Replace(options); err != nil {
					return err
				}
			}

			if len(newGallery) > 0 {
				if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
					return err
				}
				if err := tx.Create(&newGallery).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
	}
}
