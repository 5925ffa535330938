package queries

import (
	"context"

	"vista-ecoupon/internal/domain/branch"
	"vista-ecoupon/internal/pkg/errs"
	"vista-ecoupon/internal/pkg/geo"
	"vista-ecoupon/internal/usecase/shared"
)

var ErrNoBranches = errs.New("no branches available")

type BranchQueries interface {
	List(ctx context.Context) ([]branch.Branch, error)
	Nearest(ctx context.Context, p geo.Point) (*branch.Branch, error)
}

type branchQueriesImpl struct {
	branches shared.BranchReadStore
}

func NewBranchQueries(branches shared.BranchReadStore) BranchQueries {
	return &branchQueriesImpl{branches: branches}
}

func (q *branchQueriesImpl) List(ctx context.Context) ([]branch.Branch, error) {
	list, err := q.branches.ListBranches(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list branches")
	}
	return list, nil
}

// Nearest resolves the closest branch to the caller's location. Any failure
// here is recoverable for the client, which falls back to manual selection.
func (q *branchQueriesImpl) Nearest(ctx context.Context, p geo.Point) (*branch.Branch, error) {
	list, err := q.branches.ListBranches(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list branches")
	}

	nearest := branch.Nearest(list, p)
	if nearest == nil {
		return nil, ErrNoBranches
	}
	return nearest, nil
}
