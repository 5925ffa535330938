//go:build unit || e2e

package builder

import (
	"time"

	"vista-ecoupon/internal/domain/promotion"

	"github.com/google/uuid"
)

type CampaignBuilder struct {
	ID        uuid.UUID
	Period    string
	StartDate time.Time
	EndDate   time.Time
	Coupons   []promotion.Coupon
	IsActive  *bool
	Priority  *int
	Week      int
}

func NewCampaignBuilder() *CampaignBuilder {
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	return &CampaignBuilder{
		ID:        uuid.New(),
		Period:    "2026-02",
		StartDate: start,
		EndDate:   start.AddDate(0, 1, 0).Add(-time.Second),
		Coupons: []promotion.Coupon{
			NewCouponBuilder().Build(),
		},
		Week: 1,
	}
}

func (b *CampaignBuilder) WithPeriod(start, end time.Time) *CampaignBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *CampaignBuilder) WithCoupons(coupons ...promotion.Coupon) *CampaignBuilder {
	b.Coupons = coupons
	return b
}

func (b *CampaignBuilder) WithActive(active bool) *CampaignBuilder {
	b.IsActive = &active
	return b
}

func (b *CampaignBuilder) WithPriority(priority int) *CampaignBuilder {
	b.Priority = &priority
	return b
}

func (b *CampaignBuilder) WithWeek(week int) *CampaignBuilder {
	b.Week = week
	return b
}

func (b *CampaignBuilder) Build() promotion.Campaign {
	return promotion.Campaign{
		ID:        b.ID,
		Period:    b.Period,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Coupons:   b.Coupons,
		IsActive:  b.IsActive,
		Priority:  b.Priority,
		Week:      b.Week,
	}
}

type CouponBuilder struct {
	ID           uuid.UUID
	Name         string
	CardTitle    string
	IsMemberOnly bool
	TargetType   promotion.TargetType
	TargetIDs    []string
	ActiveDay    *int
}

func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		ID:         uuid.New(),
		Name:       "Free Americano",
		CardTitle:  "Americano on us",
		TargetType: promotion.TargetAll,
	}
}

func (b *CouponBuilder) WithName(name string) *CouponBuilder {
	b.Name = name
	return b
}

func (b *CouponBuilder) MemberOnly() *CouponBuilder {
	b.IsMemberOnly = true
	return b
}

func (b *CouponBuilder) WithTarget(targetType promotion.TargetType, ids ...string) *CouponBuilder {
	b.TargetType = targetType
	b.TargetIDs = ids
	return b
}

func (b *CouponBuilder) WithActiveDay(day int) *CouponBuilder {
	b.ActiveDay = &day
	return b
}

func (b *CouponBuilder) Build() promotion.Coupon {
	return promotion.Coupon{
		ID:           b.ID.String(),
		Name:         b.Name,
		CardTitle:    b.CardTitle,
		Description:  "One free drink per member per month",
		UsageLimit:   "1 per month",
		IsMemberOnly: b.IsMemberOnly,
		TargetType:   b.TargetType,
		TargetIDs:    b.TargetIDs,
		ActiveDay:    b.ActiveDay,
	}
}
