//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"vista-ecoupon/internal/domain/member"
	"vista-ecoupon/internal/domain/promotion"
	"vista-ecoupon/internal/domain/redemption"
	"vista-ecoupon/internal/domain/usage"
	"vista-ecoupon/internal/pkg/clock"
	"vista-ecoupon/internal/usecase/shared"
	"vista-ecoupon/tests/common/builder"
	sharedmock "vista-ecoupon/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC)

func memberSession() shared.Session {
	return shared.Session{
		Identifier:  "0812345678",
		CacheKey:    "0812345678",
		Entitlement: member.EntitlementMember,
		DisplayName: "Somchai Jaidee",
	}
}

type redemptionFixture struct {
	promotions *sharedmock.MockPromotionReadStore
	usage      *sharedmock.MockUsageReadStore
	cache      *sharedmock.MockUsedCouponCache
	ledger     *sharedmock.MockUsageEnqueuer
	clock      *clock.MockClock
	sut        *redemptionUseCaseImpl
}

func newRedemptionFixture(t *testing.T) *redemptionFixture {
	ctrl := gomock.NewController(t)
	f := &redemptionFixture{
		promotions: sharedmock.NewMockPromotionReadStore(ctrl),
		usage:      sharedmock.NewMockUsageReadStore(ctrl),
		cache:      sharedmock.NewMockUsedCouponCache(ctrl),
		ledger:     sharedmock.NewMockUsageEnqueuer(ctrl),
		clock:      clock.NewMockClock(testNow),
	}
	prefixes := redemption.Prefixes{Member: "MC", Guest: "MC"}
	f.sut = NewRedemptionUseCase(
		f.promotions, f.usage, f.cache, f.ledger,
		prefixes, 300*time.Second, f.clock, time.UTC,
	).(*redemptionUseCaseImpl)
	// fast ticks so expiry paths finish within the test
	f.sut.tick = time.Millisecond
	return f
}

// expectCatalog stubs the store and cache for one eligibility check.
func (f *redemptionFixture) expectCatalog(campaigns []promotion.Campaign, used map[string]struct{}) {
	f.promotions.EXPECT().ListCampaigns(gomock.Any()).Return(campaigns, nil)
	f.cache.EXPECT().Get(gomock.Any(), "0812345678", gomock.Any()).Return(used, true)
}

func TestGenerate_IssuesCode(t *testing.T) {
	ctx := context.Background()
	f := newRedemptionFixture(t)

	coupon := builder.NewCouponBuilder().Build()
	campaign := builder.NewCampaignBuilder().WithCoupons(coupon).Build()
	f.expectCatalog([]promotion.Campaign{campaign}, map[string]struct{}{})

	branch := "Siam"
	view, err := f.sut.Generate(ctx, memberSession(), coupon.ID, &branch)
	require.NoError(t, err)

	assert.Regexp(t, `^MC1502-\d{4}$`, view.Value)
	assert.Equal(t, coupon.ID, view.CouponID)
	assert.Equal(t, testNow.Add(300*time.Second), view.ExpiresAt)
	assert.Equal(t, 300, view.RemainingSeconds)

	entry := f.sut.active[view.Value]
	require.NotNil(t, entry)
	entry.countdown.Cancel()
}

func TestGenerate_AlreadyUsed(t *testing.T) {
	ctx := context.Background()
	f := newRedemptionFixture(t)

	coupon := builder.NewCouponBuilder().Build()
	campaign := builder.NewCampaignBuilder().WithCoupons(coupon).Build()
	f.expectCatalog([]promotion.Campaign{campaign}, map[string]struct{}{coupon.ID: {}})

	_, err := f.sut.Generate(ctx, memberSession(), coupon.ID, nil)
	assert.ErrorIs(t, err, ErrCouponAlreadyUsed)
}

func TestGenerate_LockedCoupon(t *testing.T) {
	ctx := context.Background()
	f := newRedemptionFixture(t)

	// activeDay 20, now is the 15th
	coupon := builder.NewCouponBuilder().WithActiveDay(20).Build()
	campaign := builder.NewCampaignBuilder().WithCoupons(coupon).Build()
	f.expectCatalog([]promotion.Campaign{campaign}, map[string]struct{}{})

	_, err := f.sut.Generate(ctx, memberSession(), coupon.ID, nil)
	assert.ErrorIs(t, err, ErrCouponLocked)
}

func TestGenerate_NotEligible(t *testing.T) {
	ctx := context.Background()
	f := newRedemptionFixture(t)

	memberOnly := builder.NewCouponBuilder().MemberOnly().Build()
	campaign := builder.NewCampaignBuilder().WithCoupons(memberOnly).Build()

	guest := shared.Session{
		Identifier:  member.GuestIdentifier,
		CacheKey:    "guest:abc",
		Entitlement: member.EntitlementNonMember,
	}

	f.promotions.EXPECT().ListCampaigns(ctx).Return([]promotion.Campaign{campaign}, nil)
	f.cache.EXPECT().Get(ctx, "guest:abc", gomock.Any()).Return(nil, false)

	_, err := f.sut.Generate(ctx, guest, memberOnly.ID, nil)
	assert.ErrorIs(t, err, ErrCouponNotEligible)
}

func TestGenerate_ReplacesPriorCode(t *testing.T) {
	ctx := context.Background()
	f := newRedemptionFixture(t)

	coupon := builder.NewCouponBuilder().Build()
	campaign := builder.NewCampaignBuilder().WithCoupons(coupon).Build()
	f.expectCatalog([]promotion.Campaign{campaign}, map[string]struct{}{})
	f.expectCatalog([]promotion.Campaign{campaign}, map[string]struct{}{})

	first, err := f.sut.Generate(ctx, memberSession(), coupon.ID, nil)
	require.NoError(t, err)
	second, err := f.sut.Generate(ctx, memberSession(), coupon.ID, nil)
	require.NoError(t, err)

	assert.Nil(t, f.sut.active[first.Value], "prior code must be dropped")
	require.NotNil(t, f.sut.active[second.Value])
	f.sut.active[second.Value].countdown.Cancel()
}

func TestConfirm_RecordsUsage(t *testing.T) {
	ctx := context.Background()
	f := newRedemptionFixture(t)

	coupon := builder.NewCouponBuilder().Build()
	campaign := builder.NewCampaignBuilder().WithCoupons(coupon).Build()
	f.expectCatalog([]promotion.Campaign{campaign}, map[string]struct{}{})

	branch := "Siam"
	view, err := f.sut.Generate(ctx, memberSession(), coupon.ID, &branch)
	require.NoError(t, err)

	var recorded usage.Record
	f.ledger.EXPECT().Enqueue(gomock.Any()).Do(func(rec usage.Record) { recorded = rec })
	f.cache.EXPECT().Add(gomock.Any(), "0812345678", gomock.Any(), gomock.Any(), coupon.ID)

	require.NoError(t, f.sut.Confirm(ctx, memberSession(), view.Value))

	assert.Equal(t, usage.StatusUsed, recorded.Status)
	assert.Equal(t, "0812345678", recorded.Identifier)
	assert.Equal(t, "Somchai Jaidee", recorded.MemberName)
	assert.Equal(t, view.Value, recorded.CouponCode)
	assert.Equal(t, "Siam", recorded.BranchName)
	assert.NotEqual(t, recorded.ID.String(), "00000000-0000-0000-0000-000000000000")

	// repeat confirmation is idempotent and writes nothing further
	require.NoError(t, f.sut.Confirm(ctx, memberSession(), view.Value))
}

func TestConfirm_Ownership(t *testing.T) {
	ctx := context.Background()
	f := newRedemptionFixture(t)

	coupon := builder.NewCouponBuilder().Build()
	campaign := builder.NewCampaignBuilder().WithCoupons(coupon).Build()
	f.expectCatalog([]promotion.Campaign{campaign}, map[string]struct{}{})

	view, err := f.sut.Generate(ctx, memberSession(), coupon.ID, nil)
	require.NoError(t, err)
	defer f.sut.active[view.Value].countdown.Cancel()

	other := shared.Session{Identifier: "0899999999", CacheKey: "0899999999", Entitlement: member.EntitlementMember}
	assert.ErrorIs(t, f.sut.Confirm(ctx, other, view.Value), ErrCodeNotOwned)
	assert.ErrorIs(t, f.sut.Confirm(ctx, memberSession(), "MC9999-0000"), ErrCodeNotFound)
}

func TestDiscard_NoRecordWritten(t *testing.T) {
	ctx := context.Background()
	f := newRedemptionFixture(t)

	coupon := builder.NewCouponBuilder().Build()
	campaign := builder.NewCampaignBuilder().WithCoupons(coupon).Build()
	f.expectCatalog([]promotion.Campaign{campaign}, map[string]struct{}{})

	view, err := f.sut.Generate(ctx, memberSession(), coupon.ID, nil)
	require.NoError(t, err)

	// no Enqueue, no Add: discarding leaves no trace
	require.NoError(t, f.sut.Discard(ctx, memberSession(), view.Value))
	assert.ErrorIs(t, f.sut.Confirm(ctx, memberSession(), view.Value), ErrCodeNotFound)
}

func TestExpiry_RecordsExpiredOnce(t *testing.T) {
	ctx := context.Background()
	f := newRedemptionFixture(t)

	coupon := builder.NewCouponBuilder().Build()
	campaign := builder.NewCampaignBuilder().WithCoupons(coupon).Build()
	f.expectCatalog([]promotion.Campaign{campaign}, map[string]struct{}{})

	view, err := f.sut.Generate(ctx, memberSession(), coupon.ID, nil)
	require.NoError(t, err)

	recorded := make(chan usage.Record, 1)
	f.ledger.EXPECT().Enqueue(gomock.Any()).Do(func(rec usage.Record) { recorded <- rec })
	f.cache.EXPECT().Add(gomock.Any(), "0812345678", gomock.Any(), gomock.Any(), coupon.ID)

	entry := f.sut.active[view.Value]
	require.NotNil(t, entry)
	entry.countdown.Wait()

	select {
	case rec := <-recorded:
		assert.Equal(t, usage.StatusExpired, rec.Status)
	case <-time.After(time.Second):
		t.Fatal("expiry record was not enqueued")
	}

	// the countdown lost the race to nothing; confirm now reports expiry
	assert.ErrorIs(t, f.sut.Confirm(ctx, memberSession(), view.Value), ErrCodeExpired)
}
