package publishers

import (
	"context"
	"encoding/json"

	"github.com/Amrsono/The-Shop/internal/repository"
	"github.com/Amrsono/The-Shop/internal/service"
	"github.com/Amrsono/The-Shop/pkg/mq"
	"go.uber.org/zap"
)

const AwardQueue = "loyalty.award"

// AwardPublisher sweeps delivered orders that have no earned ledger row
// and queues them for the award consumer. Re-publishing an order that
// was awarded in the meantime is harmless; the award is idempotent.
type AwardPublisher interface {
	Publish(ctx context.Context) error
}

type awardPublisher struct {
	orders    repository.OrderRepository
	publisher mq.Publisher
	logger    *zap.Logger
}

func NewAwardPublisher(orders repository.OrderRepository, publisher mq.Publisher, logger *zap.Logger) AwardPublisher {
	return &awardPublisher{orders: orders, publisher: publisher, logger: logger}
}

func (p *awardPublisher) Publish(ctx context.Context) error {
	orders, err := p.orders.FindDeliveredWithoutAward(100)
	if err != nil {
		return err
	}

	if len(orders) == 0 {
		return nil
	}

	p.logger.Info("Publishing unawarded delivered orders", zap.Int("count", len(orders)))

	successCount := 0
	for _, order := range orders {
		body, _ := json.Marshal(service.AwardOrderMessage{OrderID: order.ID})
		if err := p.publisher.Publish(ctx, "", AwardQueue, body); err != nil {
			p.logger.Error("Failed to publish award message",
				zap.Error(err),
				zap.String("orderID", order.ID))
			continue
		}

		successCount++
	}

	if successCount > 0 {
		p.logger.Info("Successfully published award messages",
			zap.Int("published", successCount),
			zap.Int("total", len(orders)))
	}

	return nil
}
