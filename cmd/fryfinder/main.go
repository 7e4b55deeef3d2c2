package main

import (
	"context"
	"log/slog"
	"os"

	"fryfinder/config"
	"fryfinder/internal/delivery"
	"fryfinder/internal/delivery/http"
	"fryfinder/internal/delivery/http/middleware"
	"fryfinder/internal/delivery/http/router/handler"
	"fryfinder/internal/infra/auth"
	"fryfinder/internal/infra/geocode"
	logs "fryfinder/internal/infra/log"
	"fryfinder/internal/infra/mail"
	"fryfinder/internal/infra/persistence/postgres"
	"fryfinder/internal/usecase/impl"

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
			postgres.NewLocationRepository,
			postgres.NewEventRepository,
			postgres.NewMenuItemRepository,
			postgres.NewOrderRepository,
			postgres.NewAdminRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			mail.NewSMTPMailer,
			geocode.NewZippopotamClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAdminService,
			impl.NewLocationService,
			impl.NewEventService,
			impl.NewMenuService,
			impl.NewOrderService,
			impl.NewSuggestService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAdminHandler,
			handler.NewEventHandler,
			handler.NewMenuHandler,
			handler.NewOrderHandler,
			handler.NewLocationHandler,
			handler.NewSuggestHandler,
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
