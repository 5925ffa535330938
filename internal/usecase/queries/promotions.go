package queries

import (
	"context"
	"time"

	"vista-ecoupon/internal/domain/promotion"
	"vista-ecoupon/internal/pkg/clock"
	"vista-ecoupon/internal/pkg/errs"
	"vista-ecoupon/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrCampaignNotFound = errs.New("campaign not found")

// Read models. CouponView carries the stored coupon document plus the
// per-caller lock annotation; the client renders a locked coupon greyed out
// with its unlock day.
type CouponView struct {
	promotion.Coupon
	Locked bool `json:"locked"`
}

type CampaignView struct {
	ID        uuid.UUID    `json:"id"`
	Period    string       `json:"period"`
	StartDate time.Time    `json:"startDate"`
	EndDate   time.Time    `json:"endDate"`
	Priority  int          `json:"priority"`
	Coupons   []CouponView `json:"coupons"`
}

type PromotionQueries interface {
	Current(ctx context.Context, sess shared.Session) ([]CampaignView, error)
	ListCampaigns(ctx context.Context) ([]promotion.Campaign, error)
	GetCampaign(ctx context.Context, id uuid.UUID) (*promotion.Campaign, error)
}

type promotionQueriesImpl struct {
	promotions shared.PromotionReadStore
	usage      shared.UsageReadStore
	cache      shared.UsedCouponCache
	clock      clock.Clock
	loc        *time.Location
}

func NewPromotionQueries(
	promotions shared.PromotionReadStore,
	usage shared.UsageReadStore,
	cache shared.UsedCouponCache,
	clock clock.Clock,
	loc *time.Location,
) PromotionQueries {
	return &promotionQueriesImpl{
		promotions: promotions,
		usage:      usage,
		cache:      cache,
		clock:      clock,
		loc:        loc,
	}
}

// Current returns what the caller may redeem right now: active campaigns
// overlapping the calendar month, filtered per entitlement and usage, ordered
// by priority, with the lock gate evaluated per coupon.
func (q *promotionQueriesImpl) Current(ctx context.Context, sess shared.Session) ([]CampaignView, error) {
	campaigns, err := q.promotions.ListCampaigns(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list campaigns")
	}

	now := q.clock.Now().In(q.loc)
	monthStart, monthEnd := promotion.MonthWindow(now)
	used := shared.ResolveUsedCouponIDs(ctx, sess, q.cache, q.usage, monthStart, monthEnd)

	eligible := promotion.SelectEligible(campaigns, sess.Entitlement, sess.Identifier, used, now)

	views := make([]CampaignView, 0, len(eligible))
	for _, c := range eligible {
		coupons := make([]CouponView, 0, len(c.Coupons))
		for _, cp := range c.Coupons {
			coupons = append(coupons, CouponView{
				Coupon: cp,
				Locked: promotion.Locked(cp, c, now),
			})
		}
		views = append(views, CampaignView{
			ID:        c.ID,
			Period:    c.Period,
			StartDate: c.StartDate,
			EndDate:   c.EndDate,
			Priority:  c.EffectivePriority(),
			Coupons:   coupons,
		})
	}
	return views, nil
}

// ListCampaigns is the unfiltered back-office view, inactive and out-of-window
// campaigns included.
func (q *promotionQueriesImpl) ListCampaigns(ctx context.Context) ([]promotion.Campaign, error) {
	campaigns, err := q.promotions.ListCampaigns(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list campaigns")
	}
	return campaigns, nil
}

func (q *promotionQueriesImpl) GetCampaign(ctx context.Context, id uuid.UUID) (*promotion.Campaign, error) {
	c, err := q.promotions.GetCampaign(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrCampaignNotFound)
	}
	return c, nil
}
