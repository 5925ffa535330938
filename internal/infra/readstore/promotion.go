package readstore

import (
	"context"
	"encoding/json"

	"vista-ecoupon/internal/domain/promotion"
	"vista-ecoupon/internal/infra"
	"vista-ecoupon/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PromotionReadStore struct {
	pool *pgxpool.Pool
}

func NewPromotionReadStore(pool *pgxpool.Pool) *PromotionReadStore {
	return &PromotionReadStore{pool: pool}
}

const listCampaignsSQL = `
SELECT id, period, start_date, end_date, coupons, is_active, priority, week
FROM campaigns
ORDER BY created_at
`

// ListCampaigns returns every stored campaign document. Eligibility filtering
// happens in the domain layer; the store stays a dumb document source.
func (r *PromotionReadStore) ListCampaigns(ctx context.Context) ([]promotion.Campaign, error) {
	rows, err := r.pool.Query(ctx, listCampaignsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list campaigns", err)
	}
	defer rows.Close()

	var out []promotion.Campaign
	for rows.Next() {
		var (
			c          promotion.Campaign
			couponsRaw []byte
			isActive   pgtype.Bool
			priority   pgtype.Int4
		)
		if err := rows.Scan(&c.ID, &c.Period, &c.StartDate, &c.EndDate, &couponsRaw, &isActive, &priority, &c.Week); err != nil {
			return nil, infra.WrapRepoErr("failed to scan campaign row", err)
		}
		if err := json.Unmarshal(couponsRaw, &c.Coupons); err != nil {
			return nil, infra.WrapRepoErr("malformed coupon document", err)
		}
		c.IsActive = pgconv.BoolPtr(isActive)
		c.Priority = pgconv.Int4Ptr(priority)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("campaign row iteration failed", err)
	}
	return out, nil
}

const getCampaignSQL = `
SELECT id, period, start_date, end_date, coupons, is_active, priority, week
FROM campaigns
WHERE id = $1
`

func (r *PromotionReadStore) GetCampaign(ctx context.Context, id uuid.UUID) (*promotion.Campaign, error) {
	var (
		c          promotion.Campaign
		couponsRaw []byte
		isActive   pgtype.Bool
		priority   pgtype.Int4
	)
	err := r.pool.QueryRow(ctx, getCampaignSQL, id).
		Scan(&c.ID, &c.Period, &c.StartDate, &c.EndDate, &couponsRaw, &isActive, &priority, &c.Week)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("campaign not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get campaign", err)
	}
	if err := json.Unmarshal(couponsRaw, &c.Coupons); err != nil {
		return nil, infra.WrapRepoErr("malformed coupon document", err)
	}
	c.IsActive = pgconv.BoolPtr(isActive)
	c.Priority = pgconv.Int4Ptr(priority)
	return &c, nil
}
