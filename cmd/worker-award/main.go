package main

import (
	"context"

	"github.com/Amrsono/The-Shop/internal/config"
	"github.com/Amrsono/The-Shop/internal/consumers"
	"github.com/Amrsono/The-Shop/internal/metrics"
	"github.com/Amrsono/The-Shop/internal/publishers"
	"github.com/Amrsono/The-Shop/internal/repository"
	"github.com/Amrsono/The-Shop/internal/service"
	"github.com/Amrsono/The-Shop/pkg/mq"
	"github.com/Amrsono/The-Shop/pkg/mysql"
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
			NewMQConnection,
			NewMQConsumer,

			repository.NewTransactionManager,
			repository.NewProfileRepository,
			repository.NewOrderRepository,
			repository.NewLoyaltyTransactionRepository,
			repository.NewRewardsConfigRepository,

			service.NewLoyaltyService,

			consumers.NewAwardConsumer,
		),
		fx.Invoke(runAwardConsumer),
	).Run()
}

func runAwardConsumer(cfg *config.Config, awardConsumer consumers.AwardConsumer, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle,
) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{publishers.AwardQueue}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}
			logger.Info("queue declared", zap.String("queue", publishers.AwardQueue))

			go func() {
				if err := awardConsumer.Consume(appCtx); err != nil {
					logger.Error("consumer exited", zap.Error(err))
				}
			}()

			logger.Info("award consumer started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping award consumer")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewConnectionDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	ctx := context.Background()
	return mysql.NewConnection(ctx, cfg.Database, logger)
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQConsumer(rabbitMQ *mq.RabbitMQ) (mq.Consumer, error) {
	return rabbitMQ.CreateConsumer()
}
