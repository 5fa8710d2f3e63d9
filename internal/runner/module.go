package runner

import (
	"context"

	"intraday_bot/internal/modules/config"
	mdsvc "intraday_bot/internal/modules/marketdata/service"
	recsvc "intraday_bot/internal/modules/recorder/service"
	stgsvc "intraday_bot/internal/modules/strategy/service"
	unisvc "intraday_bot/internal/modules/universe/service"
	"intraday_bot/internal/notify"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("runner",
		fx.Provide(
			notify.New, // notify.Notifier
			func(
				cfg *config.Config,
				md *mdsvc.Client,
				uni *unisvc.Watchlist,
				eval *stgsvc.Evaluator,
				rec *recsvc.PgRecorder,
				n notify.Notifier,
			) (*Runner, error) {
				return NewRunner(cfg, md, uni, eval, rec, n)
			},
		),
		fx.Invoke(func(
			lc fx.Lifecycle,
			r *Runner,
			ctx context.Context,
		) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					go r.Start(ctx)
					return nil
				},
			})
		}),
	)
}
