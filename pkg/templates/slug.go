package templates

import "strings"

// ComplianceSlug derives the subdomain for the generated compliance page
// from a business name: lowercase, every run of characters outside [a-z0-9]
// collapsed to a single hyphen, edge hyphens trimmed. Idempotent, so a slug
// that leaks back through the wizard survives unchanged.
func ComplianceSlug(businessName string) string {
	lower := strings.ToLower(businessName)

	var b strings.Builder
	b.Grow(len(lower))
	pendingHyphen := false
	for _, r := range lower {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
