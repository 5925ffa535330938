package queries

import (
	"context"
	"time"

	"vista-ecoupon/internal/domain/promotion"
	"vista-ecoupon/internal/domain/usage"
	"vista-ecoupon/internal/pkg/clock"
	"vista-ecoupon/internal/pkg/errs"
	"vista-ecoupon/internal/usecase/shared"

	"github.com/google/uuid"
)

type UsageView struct {
	ID                uuid.UUID `json:"id"`
	Identifier        string    `json:"identifier"`
	MemberName        string    `json:"memberName,omitempty"`
	CouponID          string    `json:"couponId"`
	CouponCode        string    `json:"couponCode"`
	CouponName        string    `json:"couponName"`
	CouponCardTitle   string    `json:"couponCardTitle,omitempty"`
	CouponDescription string    `json:"couponDescription,omitempty"`
	CouponImageURL    string    `json:"couponImageUrl,omitempty"`
	BranchName        string    `json:"branchName,omitempty"`
	Status            string    `json:"status"`
	Timestamp         time.Time `json:"timestamp"`
}

type HistoryQueries interface {
	Monthly(ctx context.Context, sess shared.Session) ([]UsageView, error)
	ListUsageLogs(ctx context.Context, limit int) ([]UsageView, error)
}

type historyQueriesImpl struct {
	usage shared.UsageReadStore
	clock clock.Clock
	loc   *time.Location
}

func NewHistoryQueries(usage shared.UsageReadStore, clock clock.Clock, loc *time.Location) HistoryQueries {
	return &historyQueriesImpl{usage: usage, clock: clock, loc: loc}
}

// Monthly returns the caller's ledger entries for the current calendar month,
// newest first. Guests get an empty history; their ledger rows are not
// attributable to a single session.
func (q *historyQueriesImpl) Monthly(ctx context.Context, sess shared.Session) ([]UsageView, error) {
	if sess.CacheKey != sess.Identifier {
		return []UsageView{}, nil
	}

	now := q.clock.Now().In(q.loc)
	start, end := promotion.MonthWindow(now)

	records, err := q.usage.History(ctx, sess.Identifier, start, end)
	if err != nil {
		return nil, errs.Wrap(err, "query usage history")
	}
	return toViews(records), nil
}

// ListUsageLogs is the back-office export, newest first.
func (q *historyQueriesImpl) ListUsageLogs(ctx context.Context, limit int) ([]UsageView, error) {
	records, err := q.usage.ListAll(ctx, limit)
	if err != nil {
		return nil, errs.Wrap(err, "query usage logs")
	}
	return toViews(records), nil
}

func toViews(records []usage.Record) []UsageView {
	views := make([]UsageView, 0, len(records))
	for _, r := range records {
		views = append(views, UsageView{
			ID:                r.ID,
			Identifier:        r.Identifier,
			MemberName:        r.MemberName,
			CouponID:          r.CouponID,
			CouponCode:        r.CouponCode,
			CouponName:        r.CouponName,
			CouponCardTitle:   r.CouponCardTitle,
			CouponDescription: r.CouponDescription,
			CouponImageURL:    r.CouponImageURL,
			BranchName:        r.BranchName,
			Status:            string(r.Status),
			Timestamp:         r.Timestamp,
		})
	}
	return views
}
