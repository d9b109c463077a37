package service

import (
	"fmt"
	"strings"

	"islatours/pkg/i18n"
	"islatours/pkg/model"
	"islatours/pkg/notify"
)

// BuildMessage renders the WhatsApp text for a completed form in lang.
// Optional contact lines are left out when empty.
func BuildMessage(lang string, tour model.Tour, form model.BookingForm) string {
	tr := i18n.New(lang, i18n.English)

	var sb strings.Builder
	sb.WriteString(tr.T("booking.greeting"))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "%s: %s\n", tr.T("booking.tour"), tour.Name)
	fmt.Fprintf(&sb, "%s: %s\n", tr.T("booking.date"), form.Date)
	fmt.Fprintf(&sb, "%s: %d\n", tr.T("booking.people"), form.People)
	fmt.Fprintf(&sb, "%s: $%s\n", tr.T("booking.total"), notify.Money(Total(tour.Price, form.People)))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s: %s\n", tr.T("booking.name"), form.Name)
	if form.Email != "" {
		fmt.Fprintf(&sb, "%s: %s\n", tr.T("booking.email"), form.Email)
	}
	fmt.Fprintf(&sb, "%s: %s", tr.T("booking.phone"), form.Phone)
	if form.SpecialRequests != "" {
		fmt.Fprintf(&sb, "\n%s: %s", tr.T("booking.requests"), form.SpecialRequests)
	}
	return sb.String()
}
