package repository

import (
	"context"

	"vista-ecoupon/internal/domain/usage"
	"vista-ecoupon/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UsageRepository struct {
	pool *pgxpool.Pool
}

func NewUsageRepository(pool *pgxpool.Pool) *UsageRepository {
	return &UsageRepository{pool: pool}
}

const appendUsageSQL = `
INSERT INTO usage_logs (
    id, identifier, member_name, coupon_id, coupon_code, coupon_name,
    coupon_card_title, coupon_description, coupon_image_url, branch_name, status, ts
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (id) DO NOTHING
`

// Append writes one usage record. The conflict clause makes outbox retries
// safe: a record that made it to the ledger before a transient error is not
// duplicated.
func (r *UsageRepository) Append(ctx context.Context, rec usage.Record) error {
	_, err := r.pool.Exec(ctx, appendUsageSQL,
		rec.ID, rec.Identifier, rec.MemberName, rec.CouponID, rec.CouponCode,
		rec.CouponName, rec.CouponCardTitle, rec.CouponDescription,
		rec.CouponImageURL, rec.BranchName, string(rec.Status), rec.Timestamp,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append usage record", err)
	}
	return nil
}
