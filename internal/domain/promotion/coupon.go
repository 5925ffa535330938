package promotion

import (
	"errors"
	"strings"

	"vista-ecoupon/internal/domain/member"
)

var (
	ErrEmptyCouponID     = errors.New("coupon id cannot be empty")
	ErrMissingTargetIDs  = errors.New("specific targeting requires target ids")
	ErrInvalidActiveDay  = errors.New("active day must be between 1 and 31")
	ErrInvalidTargetType = errors.New("invalid target type")
)

type TargetType string

const (
	TargetAll      TargetType = "all"
	TargetMembers  TargetType = "members"
	TargetSpecific TargetType = "specific"
)

// Coupon is a single redeemable offer inside a campaign. The JSON shape is
// preserved field-for-field against the existing campaign documents.
type Coupon struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	CardTitle      string     `json:"cardTitle"`
	Description    string     `json:"description"`
	Details        string     `json:"details"`
	Terms          string     `json:"terms"`
	UsageLimit     string     `json:"usageLimit"`
	ValidityPeriod string     `json:"validityPeriod"`
	ImageURL       string     `json:"imageUrl,omitempty"`
	IsMemberOnly   bool       `json:"isMemberOnly"`
	TargetType     TargetType `json:"targetType,omitempty"`
	TargetIDs      []string   `json:"targetIds,omitempty"`
	ActiveDay      *int       `json:"activeDay,omitempty"`
}

// Validate enforces the structural invariants admin writes must satisfy.
// Documents already in the store are read as-is; eligibility treats violations
// as ineligible rather than failing.
func (c Coupon) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return ErrEmptyCouponID
	}
	switch c.TargetType {
	case "", TargetAll, TargetMembers:
	case TargetSpecific:
		if len(c.TargetIDs) == 0 {
			return ErrMissingTargetIDs
		}
	default:
		return ErrInvalidTargetType
	}
	if c.ActiveDay != nil && (*c.ActiveDay < 1 || *c.ActiveDay > 31) {
		return ErrInvalidActiveDay
	}
	return nil
}

// appliesTo reports whether the coupon is visible to the given session.
// usedIDs removal is handled by the caller.
func (c Coupon) appliesTo(ent member.Entitlement, identifier string) bool {
	if c.IsMemberOnly && !ent.IsMember() {
		return false
	}

	switch c.TargetType {
	case TargetMembers:
		return ent.IsMember()
	case TargetSpecific:
		id := member.NormalizeIdentifier(identifier)
		if id == "" {
			return false
		}
		for _, t := range c.TargetIDs {
			if member.NormalizeIdentifier(t) == id {
				return true
			}
		}
		return false
	default:
		// "all" or unset
		return true
	}
}
