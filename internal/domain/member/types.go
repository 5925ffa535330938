package member

import "strings"

// Entitlement classifies the session after identity validation. It gates
// visibility of member-only and members-targeted coupons.
type Entitlement string

const (
	EntitlementMember    Entitlement = "MEMBER"
	EntitlementNonMember Entitlement = "NON_MEMBER"
)

func (e Entitlement) IsMember() bool {
	return e == EntitlementMember
}

// GuestIdentifier is the identifier recorded for anonymous sessions.
const GuestIdentifier = "Guest"

// NormalizeIdentifier trims surrounding whitespace; eligibility matching and
// ledger lookups always operate on the normalized form.
func NormalizeIdentifier(identifier string) string {
	return strings.TrimSpace(identifier)
}

// IdentifierVariants returns the lookup forms of a phone-style identifier.
// Historical usage records were written both with and without the leading
// zero, so ledger queries must match either form.
func IdentifierVariants(identifier string) []string {
	clean := digitsOnly(NormalizeIdentifier(identifier))
	if clean == "" {
		return nil
	}

	variants := []string{clean}
	switch {
	case strings.HasPrefix(clean, "0"):
		variants = append(variants, clean[1:])
	case len(clean) == 9:
		variants = append(variants, "0"+clean)
	}
	return variants
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
