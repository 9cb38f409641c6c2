package services

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/saghirumohammedsi24-star/DUKA/logger"
	"github.com/saghirumohammedsi24-star/DUKA/models"
)

// DispatchOrderNotifications runs the post-commit side effects of a
// placed order: render the receipt, then mail it to the admin. The order
// row is already committed when this runs, so every failure here is
// logged and swallowed; a delivery-channel problem must never look like
// a failed checkout.
func DispatchOrderNotifications(db *gorm.DB, order models.Order) {
	items, err := loadReceiptItems(db, order.ID)
	if err != nil {
		logger.L().Error("Notification dispatch: failed to load order items",
			zap.String("order_number", order.OrderNumber), zap.Error(err))
		return
	}

	pdfPath, err := GenerateOrderPDF(db, order, items)
	if err != nil {
		logger.L().Error("Notification dispatch: receipt generation failed",
			zap.String("order_number", order.OrderNumber), zap.Error(err))
		pdfPath = ""
	}

	if err := SendOrderEmail(db, order, pdfPath); err != nil {
		logger.L().Error("Notification dispatch: admin email failed",
			zap.String("order_number", order.OrderNumber), zap.Error(err))
	}
}

func loadReceiptItems(db *gorm.DB, orderID uint) ([]ReceiptItem, error) {
	type row struct {
		Name               string
		Quantity           int
		Price              float64
		SelectedAttributes string
	}

	var rows []row
	if err := db.Table("order_items").
		Select("products.name, order_items.quantity, order_items.price, order_items.selected_attributes").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", orderID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]ReceiptItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, ReceiptItem{
			Name:       r.Name,
			Quantity:   r.Quantity,
			Price:      r.Price,
			Attributes: models.DecodeSelectedAttributes(r.SelectedAttributes),
		})
	}
	return items, nil
}
