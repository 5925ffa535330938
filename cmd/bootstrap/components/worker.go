package components

import (
	"context"

	"vista-ecoupon/internal/infra/outbox"
	repo_impl "vista-ecoupon/internal/infra/repository"
	"vista-ecoupon/internal/pkg/config"
	"vista-ecoupon/internal/usecase/shared"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewUsageOutbox,
		func(o *outbox.Outbox) shared.UsageEnqueuer { return o },
	),
	fx.Invoke(
		runLegacyMigration,
	),
)

// NewUsageOutbox wires the ledger outbox worker into the application
// lifecycle: started before the server accepts traffic, drained on shutdown
// so confirmed redemptions are not lost to a restart.
func NewUsageOutbox(lc fx.Lifecycle, cfg config.Config, ledger *repo_impl.UsageRepository) *outbox.Outbox {
	o := outbox.New(ledger, cfg.Coupon.OutboxQueueSize)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go o.Run()
			return nil
		},
		OnStop: func(_ context.Context) error {
			o.Stop()
			return nil
		},
	})

	return o
}

// runLegacyMigration promotes pre-priority campaign documents once at
// startup. Running it on every boot is safe; migrated rows are skipped.
func runLegacyMigration(lc fx.Lifecycle, repo *repo_impl.PromotionRepository) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repo.MigrateLegacy(ctx)
		},
	})
}
