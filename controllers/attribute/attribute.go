package attributeControllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saghirumohammedsi24-star/DUKA/models"
)

type CreateAttributeInput struct {
	Name string `json:"name" binding:"required"`
}

// GET /api/attributes
func GetAttributes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var attributes []models.Attribute
		if err := db.Preload("Options").Find(&attributes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attributes"})
			return
		}
		c.JSON(http.StatusOK, attributes)
	}
}

// POST /api/attributes (admin)
func CreateAttribute(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateAttributeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Attribute name is required"})
			return
		}

		attribute := models.Attribute{Name: input.Name}
		if err := db.Create(&attribute).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create attribute"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Attribute created", "id": attribute.ID})
	}
}

// POST /api/attributes/:id/options (admin, multipart with optional media file)
func AddOption(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var attribute models.Attribute
		if err := db.First(&attribute, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Attribute not found"})
			return
		}

		value := c.PostForm("value")
		if value == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Option value is required"})
			return
		}

		mediaType := c.PostForm("media_type")
		if mediaType == "" {
			mediaType = "text"
		}

		var mediaURL string
		if file, err := c.FormFile("media"); err == nil {
			saveDir := filepath.Join(publicDir(), "uploads", "attributes")
			if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
				return
			}
			filename := uuid.NewString() + "_" + strings.ReplaceAll(filepath.Base(file.Filename), " ", "_")
			if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save media"})
				return
			}
			mediaURL = fmt.Sprintf("/public/uploads/attributes/%s", filename)
			mediaType = "image"
		}

		option := models.AttributeOption{
			AttributeID: attribute.ID,
			Value:       value,
			MediaURL:    mediaURL,
			MediaType:   mediaType,
		}
		if err := db.Create(&option).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add option"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Option added", "id": option.ID})
	}
}

// DELETE /api/attributes/:id (admin)
// Removes the attribute, its options, and any product links to those
// options so no orphaned join rows remain.
func DeleteAttribute(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var attribute models.Attribute
		if err := db.First(&attribute, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Attribute not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var optionIDs []uint
			if err := tx.Model(&models.AttributeOption{}).
				Where("attribute_id = ?", attribute.ID).
				Pluck("id", &optionIDs).Error; err != nil {
				return err
			}
			if len(optionIDs) > 0 {
				if err := tx.Exec("DELETE FROM product_options WHERE attribute_option_id IN ?", optionIDs).Error; err != nil {
					return err
				}
				if err := tx.Where("attribute_id = ?", attribute.ID).Delete(&models.AttributeOption{}).Error; err != nil {
					return err
				}
			}
			return tx.Delete(&attribute).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete attribute"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Attribute deleted"})
	}
}

// DELETE /api/attributes/options/:id (admin)
func DeleteOption(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var option models.AttributeOption
		if err := db.First(&option, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Option not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec("DELETE FROM product_options WHERE attribute_option_id = ?", option.ID).Error; err != nil {
				return err
			}
			return tx.Delete(&option).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete option"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Option deleted"})
	}
}

func publicDir() string {
	if dir := os.Getenv("PUBLIC_DIR"); dir != "" {
		return dir
	}
	return "./public"
}
