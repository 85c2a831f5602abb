package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"courseadmin/config"
	"courseadmin/internal/delivery"
	"courseadmin/internal/delivery/api"
	"courseadmin/internal/delivery/api/middleware"
	"courseadmin/internal/delivery/api/router/handler"
	"courseadmin/internal/infra/auth"
	logs "courseadmin/internal/infra/log"
	"courseadmin/internal/infra/persistence/memory"
	"courseadmin/internal/infra/persistence/postgres"
	"courseadmin/internal/infra/pubsub"
	"courseadmin/internal/infra/qrcode"
	"courseadmin/internal/infra/ratelimit"
	"courseadmin/internal/infra/storage"
	"courseadmin/internal/usecase"
	"courseadmin/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	fx.New(
		injectInfra(cfg),
		injectRepo(cfg),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			bootstrapAdmin,
			startServer,
		),
	).Run()
}

func injectInfra(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			logs.New,
			context.Background,
		),
		storage.Module,
		pubsub.Module,
		ratelimit.Module,
	)
}

// injectRepo selects the store implementation named by database.driver.
func injectRepo(cfg *config.Config) fx.Option {
	if cfg.Database.Driver == config.StorageDriverMemory {
		return memory.Module
	}

	return postgres.Module
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewBannerService,
			impl.NewCouponService,
			impl.NewPlanService,
			impl.NewSectionService,
			impl.NewTeacherService,
			impl.NewRankScoreService,
			impl.NewSEOURLService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewBannerHandler,
			handler.NewCouponHandler,
			handler.NewPlanHandler,
			handler.NewSectionHandler,
			handler.NewTeacherHandler,
			handler.NewRankScoreHandler,
			handler.NewSEOURLHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func bootstrapAdmin(lc fx.Lifecycle, authUC usecase.AuthUsecase) {
	lc.Append(fx.Hook{
		OnStart: authUC.EnsureBootstrapAdmin,
	})
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
