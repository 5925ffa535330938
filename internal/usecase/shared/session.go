package shared

import "vista-ecoupon/internal/domain/member"

// Session is the validated caller context threaded through the engine instead
// of ambient globals. CacheKey separates used-coupon tracking per anonymous
// session: members are tracked by identifier, guests by a per-token key so
// one guest's redemptions never lock coupons for another.
type Session struct {
	Identifier  string
	CacheKey    string
	Entitlement member.Entitlement
	DisplayName string
}

func (s Session) IsMember() bool {
	return s.Entitlement.IsMember()
}
