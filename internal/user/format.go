package user

import (
	"fmt"
	"strings"
)

// Headers are the display column titles, matching Columns.
var Headers = []string{"Name", "Email", "Phone", "Company (City)"}

const notAvailable = "N/A"

// FormatPhone reformats a phone number as +1-XXX-XXX-XXXX using its first ten
// digits. Values with fewer than ten digits are returned unchanged.
func FormatPhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) < 10 {
		return phone
	}
	return fmt.Sprintf("+1-%s-%s-%s", d[0:3], d[3:6], d[6:10])
}

// DisplayPhone returns the phone column for r.
func DisplayPhone(r Record) string {
	switch {
	case r.Phone.IsString() && r.Phone.String() != "":
		return FormatPhone(r.Phone.String())
	case r.Phone.IsSet() && !r.Phone.IsString():
		return r.Phone.String()
	default:
		return notAvailable
	}
}

// DisplayCompanyCity returns "Company (City)" with placeholders for missing parts.
func DisplayCompanyCity(r Record) string {
	return fmt.Sprintf("%s (%s)",
		r.Company.Name.Display("Unknown Company"),
		r.Address.City.Display("Unknown City"),
	)
}

// Columns returns the display values for r in Headers order.
func Columns(r Record) []string {
	return []string{
		r.Name.Display(notAvailable),
		r.Email.Display(notAvailable),
		DisplayPhone(r),
		DisplayCompanyCity(r),
	}
}
