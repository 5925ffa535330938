//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"vista-ecoupon/internal/domain/member"
	"vista-ecoupon/internal/domain/usage"
	"vista-ecoupon/internal/pkg/clock"
	"vista-ecoupon/internal/usecase/queries"
	"vista-ecoupon/internal/usecase/shared"
	sharedmock "vista-ecoupon/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type historyFixture struct {
	usage *sharedmock.MockUsageReadStore
	sut   queries.HistoryQueries
}

func newHistoryFixture(t *testing.T) *historyFixture {
	ctrl := gomock.NewController(t)
	f := &historyFixture{usage: sharedmock.NewMockUsageReadStore(ctrl)}
	f.sut = queries.NewHistoryQueries(f.usage, clock.NewMockClock(testNow), time.UTC)
	return f
}

func usedRecord(identifier string) usage.Record {
	return usage.Record{
		ID:         uuid.New(),
		Identifier: identifier,
		MemberName: "Somchai Jaidee",
		CouponID:   uuid.NewString(),
		CouponCode: "MC1502-4821",
		CouponName: "Free Americano",
		BranchName: "Siam",
		Status:     usage.StatusUsed,
		Timestamp:  testNow,
	}
}

func TestMonthly_ReturnsCurrentMonthViews(t *testing.T) {
	ctx := context.Background()
	f := newHistoryFixture(t)

	rec := usedRecord("0812345678")
	monthStart := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC)
	f.usage.EXPECT().History(ctx, "0812345678", monthStart, monthEnd).Return([]usage.Record{rec}, nil)

	views, err := f.sut.Monthly(ctx, memberSession())
	require.NoError(t, err)
	require.Len(t, views, 1)

	assert.Equal(t, rec.ID, views[0].ID)
	assert.Equal(t, "MC1502-4821", views[0].CouponCode)
	assert.Equal(t, "Used", views[0].Status)
	assert.Equal(t, "Siam", views[0].BranchName)
}

func TestMonthly_GuestHistoryIsEmpty(t *testing.T) {
	ctx := context.Background()
	f := newHistoryFixture(t)

	guest := shared.Session{
		Identifier:  member.GuestIdentifier,
		CacheKey:    "guest:7f3a",
		Entitlement: member.EntitlementNonMember,
	}

	views, err := f.sut.Monthly(ctx, guest)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestListUsageLogs_PassesLimit(t *testing.T) {
	ctx := context.Background()
	f := newHistoryFixture(t)

	f.usage.EXPECT().ListAll(ctx, 500).Return([]usage.Record{usedRecord("0812345678"), usedRecord("Guest")}, nil)

	views, err := f.sut.ListUsageLogs(ctx, 500)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Guest", views[1].Identifier)
}
