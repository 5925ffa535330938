package member

import "strings"

// Member is a validated identity from the member store.
type Member struct {
	Identifier string
	MemberID   string
	FirstName  string
	LastName   string
}

const defaultDisplayName = "สมาชิก Vista Café"

func (m Member) DisplayName() string {
	name := strings.TrimSpace(m.FirstName + " " + m.LastName)
	if name == "" {
		return defaultDisplayName
	}
	return name
}
