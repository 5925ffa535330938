//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"vista-ecoupon/internal/domain/member"
	"vista-ecoupon/internal/domain/promotion"
	"vista-ecoupon/internal/pkg/clock"
	"vista-ecoupon/internal/usecase/queries"
	"vista-ecoupon/internal/usecase/shared"
	"vista-ecoupon/tests/common/builder"
	sharedmock "vista-ecoupon/tests/mock/shared"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC)

type promotionsFixture struct {
	promotions *sharedmock.MockPromotionReadStore
	usage      *sharedmock.MockUsageReadStore
	cache      *sharedmock.MockUsedCouponCache
	sut        queries.PromotionQueries
}

func newPromotionsFixture(t *testing.T) *promotionsFixture {
	ctrl := gomock.NewController(t)
	f := &promotionsFixture{
		promotions: sharedmock.NewMockPromotionReadStore(ctrl),
		usage:      sharedmock.NewMockUsageReadStore(ctrl),
		cache:      sharedmock.NewMockUsedCouponCache(ctrl),
	}
	f.sut = queries.NewPromotionQueries(
		f.promotions, f.usage, f.cache, clock.NewMockClock(testNow), time.UTC,
	)
	return f
}

func memberSession() shared.Session {
	return shared.Session{
		Identifier:  "0812345678",
		CacheKey:    "0812345678",
		Entitlement: member.EntitlementMember,
		DisplayName: "Somchai Jaidee",
	}
}

func TestCurrent_AnnotatesLockAndPriority(t *testing.T) {
	ctx := context.Background()
	f := newPromotionsFixture(t)

	open := builder.NewCouponBuilder().WithName("Free Americano").Build()
	gated := builder.NewCouponBuilder().WithName("Birthday Cake").WithActiveDay(20).Build()
	campaign := builder.NewCampaignBuilder().WithCoupons(open, gated).WithPriority(3).Build()

	f.promotions.EXPECT().ListCampaigns(ctx).Return([]promotion.Campaign{campaign}, nil)
	f.cache.EXPECT().Get(ctx, "0812345678", gomock.Any()).Return(map[string]struct{}{}, true)

	views, err := f.sut.Current(ctx, memberSession())
	require.NoError(t, err)
	require.Len(t, views, 1)

	assert.Equal(t, 3, views[0].Priority)
	require.Len(t, views[0].Coupons, 2)
	assert.False(t, views[0].Coupons[0].Locked)
	assert.True(t, views[0].Coupons[1].Locked, "activeDay 20 gate holds on the 15th")
}

func TestCurrent_SeedsCacheOnMiss(t *testing.T) {
	ctx := context.Background()
	f := newPromotionsFixture(t)

	used := builder.NewCouponBuilder().WithName("Used One").Build()
	fresh := builder.NewCouponBuilder().WithName("Fresh One").Build()
	campaign := builder.NewCampaignBuilder().WithCoupons(used, fresh).Build()

	ledgerIDs := map[string]struct{}{used.ID: {}}
	f.promotions.EXPECT().ListCampaigns(ctx).Return([]promotion.Campaign{campaign}, nil)
	f.cache.EXPECT().Get(ctx, "0812345678", gomock.Any()).Return(nil, false)
	f.usage.EXPECT().UsedCouponIDs(ctx, "0812345678", gomock.Any(), gomock.Any()).Return(ledgerIDs, nil)
	f.cache.EXPECT().Seed(ctx, "0812345678", gomock.Any(), gomock.Any(), ledgerIDs)

	views, err := f.sut.Current(ctx, memberSession())
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Len(t, views[0].Coupons, 1)
	assert.Equal(t, "Fresh One", views[0].Coupons[0].Name)
}

func TestCurrent_GuestSeesNoMemberOnlyCoupons(t *testing.T) {
	ctx := context.Background()
	f := newPromotionsFixture(t)

	memberOnly := builder.NewCouponBuilder().MemberOnly().Build()
	open := builder.NewCouponBuilder().Build()
	campaign := builder.NewCampaignBuilder().WithCoupons(memberOnly, open).Build()

	guest := shared.Session{
		Identifier:  member.GuestIdentifier,
		CacheKey:    "guest:7f3a",
		Entitlement: member.EntitlementNonMember,
	}

	f.promotions.EXPECT().ListCampaigns(ctx).Return([]promotion.Campaign{campaign}, nil)
	// a cache miss for a guest resolves to an empty set, no ledger call
	f.cache.EXPECT().Get(ctx, "guest:7f3a", gomock.Any()).Return(nil, false)

	views, err := f.sut.Current(ctx, guest)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Len(t, views[0].Coupons, 1)
	assert.Equal(t, open.ID, views[0].Coupons[0].ID)
}

func TestCurrent_DropsOutOfWindowCampaigns(t *testing.T) {
	ctx := context.Background()
	f := newPromotionsFixture(t)

	march := builder.NewCampaignBuilder().
		WithPeriod(
			time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC),
		).
		Build()

	f.promotions.EXPECT().ListCampaigns(ctx).Return([]promotion.Campaign{march}, nil)
	f.cache.EXPECT().Get(ctx, "0812345678", gomock.Any()).Return(map[string]struct{}{}, true)

	views, err := f.sut.Current(ctx, memberSession())
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestListCampaigns_Unfiltered(t *testing.T) {
	ctx := context.Background()
	f := newPromotionsFixture(t)

	inactive := builder.NewCampaignBuilder().WithActive(false).Build()
	f.promotions.EXPECT().ListCampaigns(ctx).Return([]promotion.Campaign{inactive}, nil)

	campaigns, err := f.sut.ListCampaigns(ctx)
	require.NoError(t, err)
	assert.Len(t, campaigns, 1)
}

func TestGetCampaign_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newPromotionsFixture(t)

	id := uuid.New()
	f.promotions.EXPECT().GetCampaign(ctx, id).Return(nil, errors.New("no rows"))

	_, err := f.sut.GetCampaign(ctx, id)
	assert.ErrorIs(t, err, queries.ErrCampaignNotFound)
}
