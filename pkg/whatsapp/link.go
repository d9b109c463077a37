// Package whatsapp builds outbound click-to-chat links. Nothing is sent from
// the server; the visitor's browser opens the link.
package whatsapp

import (
	"net/url"
	"strings"

	"islatours/pkg/sanitizer"
)

const baseURL = "https://wa.me/"

// Link returns https://wa.me/<digits>?text=<message>. The number may be given
// in any format phonenumbers understands; only its digits are kept.
func Link(number, text string) string {
	digits := sanitizer.PhoneDigits(number)
	if text == "" {
		return baseURL + digits
	}
	return baseURL + digits + "?text=" + encode(text)
}

// encode escapes text the way browsers expect in a query value, using %20 for spaces.
func encode(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
