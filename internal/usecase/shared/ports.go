package shared

import (
	"context"
	"time"

	"vista-ecoupon/internal/domain/branch"
	"vista-ecoupon/internal/domain/member"
	"vista-ecoupon/internal/domain/promotion"
	"vista-ecoupon/internal/domain/usage"

	"github.com/google/uuid"
)

// Ports over the external collaborators. The engine never talks to the
// backend directly; everything behind these interfaces is replaceable in
// tests.

type PromotionReadStore interface {
	ListCampaigns(ctx context.Context) ([]promotion.Campaign, error)
	GetCampaign(ctx context.Context, id uuid.UUID) (*promotion.Campaign, error)
}

type PromotionRepository interface {
	Create(ctx context.Context, c promotion.Campaign) (uuid.UUID, error)
	Update(ctx context.Context, c promotion.Campaign) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MemberReadStore interface {
	FindByIdentifier(ctx context.Context, identifier string) (*member.Member, error)
}

type UsageReadStore interface {
	UsedCouponIDs(ctx context.Context, identifier string, periodStart, periodEnd time.Time) (map[string]struct{}, error)
	History(ctx context.Context, identifier string, periodStart, periodEnd time.Time) ([]usage.Record, error)
	ListAll(ctx context.Context, limit int) ([]usage.Record, error)
}

// UsageEnqueuer schedules a ledger append without blocking the caller.
type UsageEnqueuer interface {
	Enqueue(rec usage.Record)
}

type UsedCouponCache interface {
	Seed(ctx context.Context, key string, monthStart, monthEnd time.Time, ids map[string]struct{})
	Add(ctx context.Context, key string, monthStart, monthEnd time.Time, couponID string)
	Get(ctx context.Context, key string, monthStart time.Time) (map[string]struct{}, bool)
}

type BranchReadStore interface {
	ListBranches(ctx context.Context) ([]branch.Branch, error)
}

type AdminReadStore interface {
	FindByUsername(ctx context.Context, username string) (*AdminUser, error)
}

type AdminUser struct {
	Username     string
	PasswordHash string
}
