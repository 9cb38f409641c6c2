package services

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"

	"github.com/saghirumohammedsi24-star/DUKA/models"
)

// ReceiptItem is a line item joined with the product name for printing.
type ReceiptItem struct {
	Name       string
	Quantity   int
	Price      float64
	Attributes []models.SelectedAttribute
}

func publicDir() string {
	if dir := os.Getenv("PUBLIC_DIR"); dir != "" {
		return dir
	}
	return "./public"
}

// ReceiptURL is the public path the rendered receipt is served from.
func ReceiptURL(orderNumber string) string {
	return fmt.Sprintf("/public/receipts/Order_%s.pdf", orderNumber)
}

func receiptPath(orderNumber string) string {
	return filepath.Join(publicDir(), "receipts", fmt.Sprintf("Order_%s.pdf", orderNumber))
}

// GenerateOrderPDF renders the printable receipt: business header, order
// and delivery info, the itemized list with selected attributes, and the
// grand total. Returns the path the file was written to.
func GenerateOrderPDF(db *gorm.DB, order models.Order, items []ReceiptItem) (string, error) {
	settings := loadSettings(db)

	businessName := settings["business_name"]
	if businessName == "" {
		businessName = "DUKA Online Mall"
	}
	footer := settings["pdf_footer"]
	if footer == "" {
		footer = "Shukrani kwa kuchagua DUKA!"
	}
	currency := settings["currency"]
	if currency == "" {
		currency = "TZS"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "BU", 20)
	pdf.CellFormat(0, 12, businessName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, footer, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, fmt.Sprintf("Order Number: %s", order.OrderNumber), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02 15:04:05")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Customer: %s", orDefault(order.CustomerName, "N/A")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Phone: %s", orDefault(order.CustomerPhone, "N/A")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Delivery: %s", order.DeliveryType), "", 1, "L", false, 0, "")
	if order.DeliveryLocation != "" {
		pdf.CellFormat(0, 6, fmt.Sprintf("Location: %s", order.DeliveryLocation), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "BU", 14)
	pdf.CellFormat(0, 8, "Items List", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for i, item := range items {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 6, fmt.Sprintf("%d. %s", i+1, item.Name), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 5, fmt.Sprintf("Price: %s x %d", formatAmount(item.Price), item.Quantity), "", 1, "L", false, 0, "")
		if len(item.Attributes) > 0 {
			attrText := ""
			for j, a := range item.Attributes {
				if j > 0 {
					attrText += ", "
				}
				attrText += fmt.Sprintf("%s: %s", a.Name, a.Value)
			}
			pdf.SetFont("Helvetica", "", 9)
			pdf.CellFormat(0, 5, "Attributes: "+attrText, "", 1, "L", false, 0, "")
		}
		pdf.Ln(2)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Grand Total: %s %s", currency, formatAmount(order.TotalPrice)), "", 1, "R", false, 0, "")

	path := receiptPath(order.OrderNumber)
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return "", err
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
