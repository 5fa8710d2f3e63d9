package universe

import (
	"intraday_bot/internal/modules/universe/service"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("universe",
		fx.Provide(
			service.NewWatchlist, // *service.Watchlist
		),
	)
}
