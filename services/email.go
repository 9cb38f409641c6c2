package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gorm.io/gorm"
	gomail "gopkg.in/gomail.v2"

	"github.com/saghirumohammedsi24-star/DUKA/models"
)

// SendOrderEmail mails the receipt to the configured admin address. SMTP
// host and port come from the settings table; credentials stay in the
// environment. An unset admin address is not an error, the notification
// is simply skipped.
func SendOrderEmail(db *gorm.DB, order models.Order, pdfPath string) error {
	settings := loadSettingsByCategory(db, "Email")

	adminEmail := settings["admin_email"]
	if adminEmail == "" {
		return nil
	}
	host := settings["smtp_host"]
	if host == "" {
		return errors.New("smtp_host setting is not configured")
	}
	port := 587
	if p, err := strconv.Atoi(settings["smtp_port"]); err == nil {
		port = p
	}

	user := os.Getenv("EMAIL_USER")
	pass := os.Getenv("EMAIL_PASS")

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("DUKA System <%s>", user))
	m.SetHeader("To", adminEmail)
	m.SetHeader("Subject", fmt.Sprintf("New Order Received - Order #%s", order.OrderNumber))
	m.SetBody("text/plain", fmt.Sprintf(
		"New order from %s.\nTotal: %s\nDelivery: %s",
		order.CustomerName, formatAmount(order.TotalPrice), order.DeliveryType,
	))
	if pdfPath != "" {
		m.Attach(pdfPath, gomail.Rename(fmt.Sprintf("Order_%s.pdf", order.OrderNumber)))
	}

	d := gomail.NewDialer(host, port, user, pass)
	return d.DialAndSend(m)
}
