package readstore

import (
	"context"

	"vista-ecoupon/internal/domain/member"
	"vista-ecoupon/internal/infra"
	"vista-ecoupon/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgxpool"
)

type MemberReadStore struct {
	pool *pgxpool.Pool
}

func NewMemberReadStore(pool *pgxpool.Pool) *MemberReadStore {
	return &MemberReadStore{pool: pool}
}

const findMemberSQL = `
SELECT member_id, application_number, contact_phone, phone, first_name, last_name
FROM members
WHERE contact_phone = ANY($1) OR phone = ANY($1) OR application_number = ANY($1)
LIMIT 1
`

// FindByIdentifier matches any of the phone-style lookup fields against the
// identifier variants (with and without leading zero). Not-found and
// backend-down are distinct outcomes: the caller turns the former into
// NON_MEMBER and the latter into a retryable error.
func (r *MemberReadStore) FindByIdentifier(ctx context.Context, identifier string) (*member.Member, error) {
	variants := member.IdentifierVariants(identifier)
	if len(variants) == 0 {
		variants = []string{member.NormalizeIdentifier(identifier)}
	}

	var (
		m        member.Member
		memberID string
		appNo    string
	)
	err := r.pool.QueryRow(ctx, findMemberSQL, variants).
		Scan(&memberID, &appNo, new(string), new(string), &m.FirstName, &m.LastName)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("member lookup failed", err, infra.KindUnavailable)
	}

	m.Identifier = member.NormalizeIdentifier(identifier)
	m.MemberID = memberID
	if m.MemberID == "" {
		m.MemberID = appNo
	}
	if m.MemberID == "" {
		m.MemberID = m.Identifier
	}
	return &m, nil
}
