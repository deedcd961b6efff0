package main

import (
	"context"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery"
	"storefront/internal/delivery/api"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/backend"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/payment"
	"storefront/internal/infra/pubsub"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/session"
	"storefront/internal/state"
	"storefront/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectState(),
		injectBackend(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startWorkspaceSweeper,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		session.Module,
		pubsub.Module,
	)
}

func injectState() fx.Option {
	return fx.Provide(
		state.NewRegistry,
		state.NewCatalog,
	)
}

func injectBackend() fx.Option {
	return fx.Provide(
		backend.NewClient,
		backend.NewAuthAPI,
		backend.NewCatalogAPI,
		backend.NewCartAPI,
		backend.NewAddressAPI,
		backend.NewOrderAPI,
		backend.NewWishlistAPI,
		backend.NewAdminAPI,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		auth.NewJWTService,
		payment.NewHostedWidget,
		qrcode.NewQRCodeService,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewAuthService,
		impl.NewCatalogService,
		impl.NewCartService,
		impl.NewAddressService,
		impl.NewCheckoutService,
		impl.NewOrderService,
		impl.NewWishlistService,
		impl.NewAdminService,
	)
}

func injectMiddleware() fx.Option {
	return fx.Provide(
		middleware.NewAuthMiddleware,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewAuthHandler,
		handler.NewCatalogHandler,
		handler.NewCartHandler,
		handler.NewAddressHandler,
		handler.NewCheckoutHandler,
		handler.NewOrderHandler,
		handler.NewWishlistHandler,
		handler.NewAdminHandler,
		handler.NewTestHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			api.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

// startWorkspaceSweeper drops the workspaces of sessions that expired without
// signing out.
func startWorkspaceSweeper(lc fx.Lifecycle, registry *state.Registry, cfg *config.Config, logger *slog.Logger) {
	sweeper := state.NewSweeper("workspaces", cfg.Session.SweepInterval, registry.Sweep, logger)
	lc.Append(fx.Hook{
		OnStart: sweeper.Start,
		OnStop:  sweeper.Stop,
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Run the OnStop hooks before exiting.
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
