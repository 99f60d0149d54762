package main

import (
	"context"
	"net/http"
	"time"

	"github.com/Amrsono/The-Shop/internal/api"
	v1 "github.com/Amrsono/The-Shop/internal/api/v1"
	apivalidator "github.com/Amrsono/The-Shop/internal/api/validator"
	"github.com/Amrsono/The-Shop/internal/config"
	apperrors "github.com/Amrsono/The-Shop/internal/errors"
	"github.com/Amrsono/The-Shop/internal/metrics"
	"github.com/Amrsono/The-Shop/internal/repository"
	"github.com/Amrsono/The-Shop/internal/service"
	"github.com/Amrsono/The-Shop/pkg/mysql"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			metrics.NewMetrics,

			NewConnectionDB,
			NewFiberApp,
			NewValidator,

			repository.NewTransactionManager,
			repository.NewProfileRepository,
			repository.NewProductRepository,
			repository.NewOrderRepository,
			repository.NewLoyaltyTransactionRepository,
			repository.NewRewardsConfigRepository,

			service.NewLoyaltyService,
			service.NewRewardsService,
			service.NewOrderService,
			service.NewProductService,
			service.NewProfileService,

			NewAPIHandler,
		),
		fx.Invoke(startServer, startMetricsServer, startDatabaseCollector),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, profiles repository.ProfileRepository,
	m *metrics.Metrics, cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler, profiles, m, cfg.Auth.JWTSecret, logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}

// startMetricsServer exposes /metrics on its own listener so the scrape
// surface never shares a port with the storefront API.
func startMetricsServer(cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: cfg.Metrics.Port, Handler: mux}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("Metrics server failed", zap.Error(err))
				}
			}()
			logger.Info("Metrics server started", zap.String("port", cfg.Metrics.Port))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

func startDatabaseCollector(m *metrics.Metrics, logger *zap.Logger, db *gorm.DB, lc fx.Lifecycle) {
	collector := metrics.NewDatabaseCollector(m, logger, db)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			collector.Start(15 * time.Second)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			collector.Stop()
			return nil
		},
	})
}

func NewConnectionDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	ctx := context.Background()
	return mysql.NewConnection(ctx, cfg.Database, logger)
}

func NewFiberApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: apperrors.ErrorHandler(),
	})
}

func NewValidator(m *metrics.Metrics) apivalidator.IXValidator {
	return apivalidator.NewXValidator(validator.New(), m)
}

func NewAPIHandler(logger *zap.Logger, orders service.OrderService, rewards service.RewardsService,
	loyalty service.LoyaltyService, products service.ProductService, profiles service.ProfileService,
	xv apivalidator.IXValidator, m *metrics.Metrics, cfg *config.Config) *v1.Handler {
	return v1.NewHandler(logger, orders, rewards, loyalty, products, profiles, xv, m, cfg.Checkout.Timeout)
}
