package components

import (
	"vista-ecoupon/internal/infra/cache"
	"vista-ecoupon/internal/infra/readstore"
	repo_impl "vista-ecoupon/internal/infra/repository"
	"vista-ecoupon/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			readstore.NewPromotionReadStore,
			fx.As(new(shared.PromotionReadStore)),
		),
		fx.Annotate(
			readstore.NewMemberReadStore,
			fx.As(new(shared.MemberReadStore)),
		),
		fx.Annotate(
			readstore.NewUsageReadStore,
			fx.As(new(shared.UsageReadStore)),
		),
		fx.Annotate(
			readstore.NewBranchReadStore,
			fx.As(new(shared.BranchReadStore)),
		),
		fx.Annotate(
			readstore.NewAdminReadStore,
			fx.As(new(shared.AdminReadStore)),
		),
		// Concrete repositories are kept available alongside their ports:
		// the startup migration and the outbox worker need them directly.
		repo_impl.NewPromotionRepository,
		func(r *repo_impl.PromotionRepository) shared.PromotionRepository { return r },
		repo_impl.NewUsageRepository,
		fx.Annotate(
			cache.NewUsedCouponCache,
			fx.As(new(shared.UsedCouponCache)),
		),
	),
)
