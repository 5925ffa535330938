package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"vista-ecoupon/internal/domain/promotion"
	"vista-ecoupon/internal/infra"
	"vista-ecoupon/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PromotionRepository struct {
	pool *pgxpool.Pool
}

func NewPromotionRepository(pool *pgxpool.Pool) *PromotionRepository {
	return &PromotionRepository{pool: pool}
}

const createCampaignSQL = `
INSERT INTO campaigns (period, start_date, end_date, coupons, is_active, priority, week, schema_version)
VALUES ($1, $2, $3, $4, $5, $6, $7, 2)
RETURNING id
`

func (r *PromotionRepository) Create(ctx context.Context, c promotion.Campaign) (uuid.UUID, error) {
	couponsRaw, err := json.Marshal(c.Coupons)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode coupon document", err)
	}

	var id uuid.UUID
	err = r.pool.QueryRow(ctx, createCampaignSQL,
		c.Period, c.StartDate, c.EndDate, couponsRaw,
		pgconv.BoolFromPtr(c.IsActive), pgconv.Int4FromPtr(c.Priority), c.Week,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create campaign", err)
	}
	return id, nil
}

const updateCampaignSQL = `
UPDATE campaigns
SET period = $2, start_date = $3, end_date = $4, coupons = $5,
    is_active = $6, priority = $7, week = $8, schema_version = 2, updated_at = now()
WHERE id = $1
`

func (r *PromotionRepository) Update(ctx context.Context, c promotion.Campaign) error {
	couponsRaw, err := json.Marshal(c.Coupons)
	if err != nil {
		return infra.WrapRepoErr("failed to encode coupon document", err)
	}

	tag, err := r.pool.Exec(ctx, updateCampaignSQL,
		c.ID, c.Period, c.StartDate, c.EndDate, couponsRaw,
		pgconv.BoolFromPtr(c.IsActive), pgconv.Int4FromPtr(c.Priority), c.Week,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update campaign", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("campaign not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteCampaignSQL = `DELETE FROM campaigns WHERE id = $1`

func (r *PromotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, deleteCampaignSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete campaign", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("campaign not found", nil, infra.KindNotFound)
	}
	return nil
}

const migrateLegacySQL = `
UPDATE campaigns
SET priority = COALESCE(priority, week), schema_version = 2, updated_at = now()
WHERE schema_version < 2
`

// MigrateLegacy promotes week-ordered v1 campaign documents to the
// priority-ordered v2 schema. Runs once at startup; read paths never sniff
// document shapes.
func (r *PromotionRepository) MigrateLegacy(ctx context.Context) error {
	tag, err := r.pool.Exec(ctx, migrateLegacySQL)
	if err != nil {
		return infra.WrapRepoErr("legacy campaign migration failed", err)
	}
	if n := tag.RowsAffected(); n > 0 {
		slog.Info("migrated legacy campaign documents", "count", n)
	}
	return nil
}
