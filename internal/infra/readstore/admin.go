package readstore

import (
	"context"

	"vista-ecoupon/internal/infra"
	"vista-ecoupon/internal/pkg/pgconv"
	"vista-ecoupon/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminReadStore struct {
	pool *pgxpool.Pool
}

func NewAdminReadStore(pool *pgxpool.Pool) *AdminReadStore {
	return &AdminReadStore{pool: pool}
}

const findAdminSQL = `
SELECT username, password_hash
FROM admin_users
WHERE username = $1
`

func (r *AdminReadStore) FindByUsername(ctx context.Context, username string) (*shared.AdminUser, error) {
	var u shared.AdminUser
	err := r.pool.QueryRow(ctx, findAdminSQL, username).Scan(&u.Username, &u.PasswordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("admin user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("admin user lookup failed", err)
	}
	return &u, nil
}
