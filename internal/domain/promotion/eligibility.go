package promotion

import (
	"sort"
	"time"

	"vista-ecoupon/internal/domain/member"
)

// MonthWindow returns the inclusive boundaries of the calendar month
// containing t, in t's location. This is the evaluation window for the
// "current promotions" view.
func MonthWindow(t time.Time) (start, end time.Time) {
	y, m, _ := t.Date()
	loc := t.Location()
	start = time.Date(y, m, 1, 0, 0, 0, 0, loc)
	end = start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

// SelectEligible filters campaigns down to what the given session may see at
// the given instant. It is a pure function of its inputs: campaigns are not
// mutated, coupon slices are copied.
//
// A campaign survives when it is active and its [start, end] interval overlaps
// the calendar month containing now. Within a surviving campaign, coupons are
// dropped when already used this period, member-only for a non-member session,
// or targeted away from the caller. Campaigns left without coupons are dropped
// entirely. The result is ordered by effective priority ascending, ties broken
// by start date ascending; coupon order within a campaign is preserved.
func SelectEligible(
	campaigns []Campaign,
	ent member.Entitlement,
	identifier string,
	usedCouponIDs map[string]struct{},
	now time.Time,
) []Campaign {
	windowStart, windowEnd := MonthWindow(now)

	var out []Campaign
	for _, c := range campaigns {
		if !c.Active() || !c.HasValidDates() {
			continue
		}
		if c.StartDate.After(windowEnd) || c.EndDate.Before(windowStart) {
			continue
		}

		kept := make([]Coupon, 0, len(c.Coupons))
		for _, cp := range c.Coupons {
			if _, used := usedCouponIDs[cp.ID]; used {
				continue
			}
			if !cp.appliesTo(ent, identifier) {
				continue
			}
			kept = append(kept, cp)
		}
		if len(kept) == 0 {
			continue
		}

		c.Coupons = kept
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i].EffectivePriority(), out[j].EffectivePriority()
		if pi != pj {
			return pi < pj
		}
		return out[i].StartDate.Before(out[j].StartDate)
	})

	return out
}

// Locked reports whether a coupon inside a campaign is visible but not yet
// redeemable: either the campaign has not started, or the coupon carries a
// day-of-month unlock gate that now has not reached.
func Locked(c Coupon, campaign Campaign, now time.Time) bool {
	if now.Before(campaign.StartDate) {
		return true
	}
	if c.ActiveDay != nil && now.Day() < *c.ActiveDay {
		return true
	}
	return false
}
