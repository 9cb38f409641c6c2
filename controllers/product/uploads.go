package productcontroller

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/saghirumohammedsi24-star/DUKA/models"
)

// publicDir is where uploaded media and generated receipts live; it is
// served by the router under /public.
func publicDir() string {
	if dir := os.Getenv("PUBLIC_DIR"); dir != "" {
		return dir
	}
	return "./public"
}

// saveProductImage stores an uploaded file under the public uploads folder
// and returns the URL it will be served from.
func saveProductImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	saveDir := filepath.Join(publicDir(), "uploads", "products")
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", err
	}

	filename := uuid.NewString() + "_" + strings.ReplaceAll(filepath.Base(file.Filename), " ", "_")
	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", err
	}
	return fmt.Sprintf("/public/uploads/products/%s", filename), nil
}

// generateSKU allocates the next human-readable id for a category inside
// the caller's transaction, e.g. ELE-0007. Uncategorized products share
// the GEN prefix.
func generateSKU(tx *gorm.DB, category string) (string, error) {
	prefix := skuPrefix(category)

	counter := models.ProductCounter{Prefix: prefix, Count: 1}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "prefix"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("count + 1")}),
	}).Create(&counter).Error; err != nil {
		return "", err
	}
	if err := tx.First(&counter, "prefix = ?", prefix).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%04d", prefix, counter.Count), nil
}

func skuPrefix(category string) string {
	var letters []rune
	for _, r := range strings.ToUpper(category) {
		if r >= 'A' && r <= 'Z' {
			letters = append(letters, r)
			if len(letters) == 3 {
				break
			}
		}
	}
	if len(letters) < 3 {
		return "GEN"
	}
	return string(letters)
}
