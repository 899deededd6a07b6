package main

import (
	"context"
	"log/slog"
	"os"

	"cliniweb/config"
	"cliniweb/internal/delivery"
	"cliniweb/internal/delivery/http"
	"cliniweb/internal/delivery/http/middleware"
	"cliniweb/internal/delivery/http/router/handler"
	"cliniweb/internal/domain/service"
	"cliniweb/internal/infra/auth"
	logs "cliniweb/internal/infra/log"
	"cliniweb/internal/infra/persistence/postgres"
	"cliniweb/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCredentialRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
		),
	)
}

// newPasswordHasher creates the bcrypt hasher with the configured work factor.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth == nil || cfg.Auth.BcryptCost == 0 {
		return auth.NewBcryptHasher()
	}

	return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
