package components

import (
	"time"

	"vista-ecoupon/internal/domain/redemption"
	"vista-ecoupon/internal/pkg/clock"
	"vista-ecoupon/internal/pkg/config"
	"vista-ecoupon/internal/usecase"
	"vista-ecoupon/internal/usecase/commands"
	"vista-ecoupon/internal/usecase/queries"
	"vista-ecoupon/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSessionUseCase,
		NewRedemptionCommands,
		commands.NewCampaignUseCase,
		commands.NewAuthUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewPromotionQueries,
		queries.NewHistoryQueries,
		queries.NewBranchQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewRedemptionCommands folds the coupon settings into the value types the
// redemption engine takes, keeping config out of the usecase package.
func NewRedemptionCommands(
	promotions shared.PromotionReadStore,
	usageStore shared.UsageReadStore,
	cache shared.UsedCouponCache,
	ledger shared.UsageEnqueuer,
	cfg config.Config,
	clk clock.Clock,
	loc *time.Location,
) commands.RedemptionCommands {
	prefixes := redemption.Prefixes{
		Member: cfg.Coupon.PrefixMember,
		Guest:  cfg.Coupon.PrefixGuest,
	}
	return commands.NewRedemptionUseCase(promotions, usageStore, cache, ledger, prefixes, cfg.Coupon.CodeTTL(), clk, loc)
}
