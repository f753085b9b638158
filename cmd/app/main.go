package main

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/Rogue-Bear-Innovations/starwars-back/internal/config"
	"github.com/Rogue-Bear-Innovations/starwars-back/internal/db"
	"github.com/Rogue-Bear-Innovations/starwars-back/internal/logger"
	"github.com/Rogue-Bear-Innovations/starwars-back/internal/service"
	"github.com/Rogue-Bear-Innovations/starwars-back/internal/transport"
)

func main() {
	fx.New(appOptions()).Run()
}

func appOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			config.NewConfig,
			logger.NewLogger,
			db.NewGormClient,
			service.NewGeneral,
		),
		fx.WithLogger(func(l *zap.SugaredLogger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Desugar()}
		}),
		transport.Module,
	)
}
