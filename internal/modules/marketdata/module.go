package marketdata

import (
	"context"

	"intraday_bot/internal/modules/config"
	"intraday_bot/internal/modules/marketdata/service"
	unisvc "intraday_bot/internal/modules/universe/service"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("marketdata",
		fx.Provide(
			service.NewClient, // *service.Client
		),
		fx.Invoke(func(
			lc fx.Lifecycle,
			cfg *config.Config,
			c *service.Client,
			wl *unisvc.Watchlist,
			ctx context.Context,
		) {
			if !cfg.MarketData.WSEnabled {
				return
			}
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					go c.StreamQuotes(ctx, wl.ListTradableSymbols())
					return nil
				},
			})
		}),
	)
}
