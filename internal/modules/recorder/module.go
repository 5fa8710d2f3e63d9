package recorder

import (
	"intraday_bot/internal/modules/recorder/service"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("recorder",
		fx.Provide(
			service.NewPgRecorder, // *service.PgRecorder
		),
	)
}
