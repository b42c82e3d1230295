package validate

import "strings"

// Digits strips every non-digit rune from s.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone progressively masks a phone number as (XXX) XXX-XXXX while the
// user types. Input beyond ten digits is truncated, never rejected, and the
// formatter is idempotent on its own output.
func FormatPhone(raw string) string {
	digits := Digits(raw)
	if len(digits) > 10 {
		digits = digits[:10]
	}
	switch {
	case len(digits) == 0:
		return ""
	case len(digits) <= 3:
		return "(" + digits
	case len(digits) <= 6:
		return "(" + digits[:3] + ") " + digits[3:]
	default:
		return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
	}
}

// FormatEIN progressively masks an employer identification number as
// XX-XXXXXXX. Input beyond nine digits is truncated; idempotent on its own
// output.
func FormatEIN(raw string) string {
	digits := Digits(raw)
	if len(digits) > 9 {
		digits = digits[:9]
	}
	if len(digits) <= 2 {
		return digits
	}
	return digits[:2] + "-" + digits[2:]
}

// NormalizeWebsiteURL trims the value and prepends https:// when no scheme
// is present. Empty input stays empty.
func NormalizeWebsiteURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return trimmed
	}
	return "https://" + trimmed
}
