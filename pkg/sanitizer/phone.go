package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Guests mostly dial from these regions. HN comes first so local numbers
// written without a country code resolve to Honduras.
var supportedRegions = []string{"HN", "US", "CA", "GB"}

// NormalizePhone returns the E.164 form of phone, or "" when it cannot be parsed.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	for _, region := range supportedRegions {
		parsed, err := phonenumbers.Parse(phone, region)
		if err != nil || !phonenumbers.IsPossibleNumber(parsed) {
			continue
		}
		return phonenumbers.Format(parsed, phonenumbers.E164)
	}
	return ""
}

// PhoneDigits returns the digits-only form used in wa.me links.
func PhoneDigits(phone string) string {
	if e164 := NormalizePhone(phone); e164 != "" {
		return strings.TrimPrefix(e164, "+")
	}
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RegionOf reports the ISO region of an E.164 number, or "" if unknown.
func RegionOf(e164 string) string {
	parsed, err := phonenumbers.Parse(e164, "")
	if err != nil {
		return ""
	}
	return phonenumbers.GetRegionCodeForNumber(parsed)
}
