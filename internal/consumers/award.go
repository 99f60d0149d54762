package consumers

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Amrsono/The-Shop/internal/constants"
	"github.com/Amrsono/The-Shop/internal/service"
	"github.com/Amrsono/The-Shop/pkg/mq"
	"go.uber.org/zap"
)

const awardQueue = "loyalty.award"

type AwardConsumer interface {
	Consume(ctx context.Context) error
}

type awardConsumer struct {
	loyalty  service.LoyaltyService
	consumer mq.Consumer
	logger   *zap.Logger
}

func NewAwardConsumer(loyalty service.LoyaltyService, consumer mq.Consumer, logger *zap.Logger) AwardConsumer {
	return &awardConsumer{loyalty: loyalty, consumer: consumer, logger: logger}
}

func (c *awardConsumer) Consume(ctx context.Context) error {
	return c.consumer.Consume(ctx, 1, awardQueue, c.handleMessage)
}

func (c *awardConsumer) handleMessage(ctx context.Context, body []byte) error {
	var msg service.AwardOrderMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		c.logger.Warn("invalid award message", zap.Error(err))
		return err
	}

	result, err := c.loyalty.AwardForOrder(ctx, msg.OrderID)
	if err != nil {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) && serviceErr.Code == constants.ErrCodeOrderNotFound {
			// Stale message; dropping it is correct.
			c.logger.Warn("award message for unknown order", zap.String("orderID", msg.OrderID))
			return err
		}
		// Database trouble is worth another attempt.
		return mq.Temporary(err)
	}

	if result.Granted {
		c.logger.Info("Reconciled missing award",
			zap.String("orderID", msg.OrderID),
			zap.Int64("points", result.Points))
	}

	return nil
}
