package readstore

import (
	"context"

	"vista-ecoupon/internal/domain/branch"
	"vista-ecoupon/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BranchReadStore struct {
	pool *pgxpool.Pool
}

func NewBranchReadStore(pool *pgxpool.Pool) *BranchReadStore {
	return &BranchReadStore{pool: pool}
}

const listBranchesSQL = `
SELECT id, name, lat, lng
FROM branches
ORDER BY id
`

func (r *BranchReadStore) ListBranches(ctx context.Context) ([]branch.Branch, error) {
	rows, err := r.pool.Query(ctx, listBranchesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list branches", err)
	}
	defer rows.Close()

	var out []branch.Branch
	for rows.Next() {
		var b branch.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Lat, &b.Lng); err != nil {
			return nil, infra.WrapRepoErr("failed to scan branch row", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("branch row iteration failed", err)
	}
	return out, nil
}
