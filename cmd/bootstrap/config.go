package bootstrap

import (
	"time"

	"vista-ecoupon/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewLocation,
	),
)

// NewLocation resolves the application timezone once at startup. All calendar
// logic (month windows, unlock gates, code date stamps) runs in it.
func NewLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Coupon.Location()
}
