package services

import (
	"fmt"
	"net/url"
	"strings"

	"gorm.io/gorm"

	"github.com/saghirumohammedsi24-star/DUKA/models"
)

// BuildWhatsAppLink returns a wa.me deep link with a prefilled message so
// the customer can finalize payment out-of-band. An unset number yields
// an empty link; checkout proceeds regardless.
func BuildWhatsAppLink(db *gorm.DB, order models.Order) string {
	settings := loadSettingsByCategory(db, "WhatsApp")
	number := settings["whatsapp_number"]
	if number == "" {
		return ""
	}

	message := fmt.Sprintf(
		"Habari, nimeweka order namba %s.\nJina: %s\nJumla: %s TZS\nNaomba kushughulikiwa.",
		order.OrderNumber, order.CustomerName, formatAmount(order.TotalPrice),
	)

	return fmt.Sprintf("https://wa.me/%s?text=%s",
		strings.TrimPrefix(number, "+"), url.QueryEscape(message))
}

// formatAmount renders 1234567.5 as "1,234,567.50" for customer-facing text.
func formatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	parts := strings.SplitN(s, ".", 2)

	intPart := parts[0]
	var out []byte
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, byte(r))
	}
	return string(out) + "." + parts[1]
}
