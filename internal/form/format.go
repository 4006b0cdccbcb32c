package form

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// FormatPhone normalizes a Korean mobile number to 010-XXXX-XXXX.
// Anything that is not eleven digits after stripping separators is
// returned as typed, so partially entered numbers round-trip.
func FormatPhone(raw string) string {
	digits := digitsOnly(raw)
	if len(digits) != 11 || !strings.HasPrefix(digits, "010") {
		return raw
	}
	return digits[:3] + "-" + digits[3:7] + "-" + digits[7:]
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ComposeEmail joins the split local/domain inputs of the customer form.
// Blank parts yield a blank address rather than a dangling "@".
func ComposeEmail(local, domain string) string {
	local = strings.TrimSpace(local)
	domain = strings.TrimSpace(domain)
	if local == "" || domain == "" {
		return ""
	}
	return local + "@" + domain
}

// SplitEmail is the inverse of ComposeEmail for prefilling edit forms.
func SplitEmail(addr string) (local, domain string) {
	at := strings.LastIndex(addr, "@")
	if at < 0 {
		return addr, ""
	}
	return addr[:at], addr[at+1:]
}

// FormatCurrency renders an amount in won with thousands grouping.
func FormatCurrency(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := fmt.Sprintf("%d", amount)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + "원"
	if neg {
		out = "-" + out
	}
	return out
}

// FormatDate renders a timestamp as the list-view date.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// FormatDateTime renders a timestamp as the detail-view date.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

// ParseBirthDate parses the date-of-birth input field.
func ParseBirthDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(s))
}
