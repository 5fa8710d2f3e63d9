package main

import (
	"context"
	"log"

	"intraday_bot/internal/modules/config"
	"intraday_bot/internal/modules/marketdata"
	"intraday_bot/internal/modules/postgres"
	"intraday_bot/internal/modules/recorder"
	"intraday_bot/internal/modules/strategy"
	"intraday_bot/internal/modules/universe"
	"intraday_bot/internal/runner"
	"intraday_bot/pkg/logger"
	"intraday_bot/pkg/tracing"

	"go.uber.org/fx"
)

func main() {
	if err := logger.Init(); err != nil {
		log.Fatal(err)
	}
	logger.SetServiceName("intraday_bot")
	tracing.SetServiceName("intraday_bot")

	app := fx.New(
		fx.Provide(
			func() context.Context {
				return context.Background()
			},
		),
		config.Module(),
		postgres.Module(),
		universe.Module(),
		marketdata.Module(),
		strategy.Module(),
		recorder.Module(),
		runner.Module(),
		fx.Invoke(func(lc fx.Lifecycle, cfg *config.Config) error {
			if cfg.Jaeger.Host == "" {
				return nil
			}
			_, closeTracer, err := tracing.InitTracer(tracing.Config{
				Host: cfg.Jaeger.Host,
				Port: cfg.Jaeger.Port,
			})
			if err != nil {
				return err
			}
			lc.Append(fx.Hook{
				OnStop: func(context.Context) error {
					closeTracer()
					return nil
				},
			})
			return nil
		}),
	)
	app.Run()
}
