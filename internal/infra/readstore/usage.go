package readstore

import (
	"context"
	"time"

	"vista-ecoupon/internal/domain/member"
	"vista-ecoupon/internal/domain/usage"
	"vista-ecoupon/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UsageReadStore struct {
	pool *pgxpool.Pool
}

func NewUsageReadStore(pool *pgxpool.Pool) *UsageReadStore {
	return &UsageReadStore{pool: pool}
}

const usedCouponIDsSQL = `
SELECT DISTINCT coupon_id
FROM usage_logs
WHERE identifier = ANY($1)
  AND status IN ('Used', 'Expired')
  AND ts >= $2 AND ts <= $3
`

// UsedCouponIDs returns the coupon ids the identifier has finalized within
// the period. This is the source of truth seeding the per-session cache.
func (r *UsageReadStore) UsedCouponIDs(ctx context.Context, identifier string, periodStart, periodEnd time.Time) (map[string]struct{}, error) {
	rows, err := r.pool.Query(ctx, usedCouponIDsSQL, identifierVariants(identifier), periodStart, periodEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query used coupon ids", err)
	}
	defer rows.Close()

	out := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan used coupon id", err)
		}
		if id != "" {
			out[id] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("used coupon id iteration failed", err)
	}
	return out, nil
}

const historySQL = `
SELECT id, identifier, member_name, coupon_id, coupon_code, coupon_name,
       coupon_card_title, coupon_description, coupon_image_url, branch_name, status, ts
FROM usage_logs
WHERE identifier = ANY($1)
  AND ts >= $2 AND ts <= $3
ORDER BY ts DESC
`

// History returns the identifier's finalized redemptions within the period,
// newest first.
func (r *UsageReadStore) History(ctx context.Context, identifier string, periodStart, periodEnd time.Time) ([]usage.Record, error) {
	rows, err := r.pool.Query(ctx, historySQL, identifierVariants(identifier), periodStart, periodEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query usage history", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

const listAllSQL = `
SELECT id, identifier, member_name, coupon_id, coupon_code, coupon_name,
       coupon_card_title, coupon_description, coupon_image_url, branch_name, status, ts
FROM usage_logs
ORDER BY ts DESC
LIMIT $1
`

// ListAll is the back-office bulk read, newest first.
func (r *UsageReadStore) ListAll(ctx context.Context, limit int) ([]usage.Record, error) {
	rows, err := r.pool.Query(ctx, listAllSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list usage logs", err)
	}
	defer rows.Close()
	return scanRecords(rows)
}

func scanRecords(rows pgx.Rows) ([]usage.Record, error) {
	var out []usage.Record
	for rows.Next() {
		var rec usage.Record
		if err := rows.Scan(
			&rec.ID, &rec.Identifier, &rec.MemberName, &rec.CouponID, &rec.CouponCode,
			&rec.CouponName, &rec.CouponCardTitle, &rec.CouponDescription,
			&rec.CouponImageURL, &rec.BranchName, &rec.Status, &rec.Timestamp,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan usage record", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("usage record iteration failed", err)
	}
	return out, nil
}

func identifierVariants(identifier string) []string {
	variants := member.IdentifierVariants(identifier)
	if len(variants) == 0 {
		return []string{member.NormalizeIdentifier(identifier)}
	}
	return variants
}
