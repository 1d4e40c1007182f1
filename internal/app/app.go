package app

import (
	"github.com/carousell/ct-go/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap/zapcore"

	"github.com/hiresync/hubspot-bridge/internal/config"
	"github.com/hiresync/hubspot-bridge/internal/repo/hubspot"
	"github.com/hiresync/hubspot-bridge/internal/server"
	"github.com/hiresync/hubspot-bridge/internal/usecase"
)

func Invoke(funcs ...any) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	log.Debugw("config loaded", log.Reflect("config", conf))
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Unwrap().Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			newRestyClient,

			hubspot.NewClient,

			usecase.NewContactUsecase,
			usecase.NewPropertyUsecase,

			server.NewController,
			server.NewContactController,
			server.NewPropertyController,
		),
		fx.Supply(conf),
		fx.Invoke(funcs...),
	)
}
