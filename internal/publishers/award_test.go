package publishers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Amrsono/The-Shop/internal/mocks"
	"github.com/Amrsono/The-Shop/internal/model"
	"github.com/Amrsono/The-Shop/internal/publishers"
	"github.com/Amrsono/The-Shop/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestAwardPublisher_Publish(t *testing.T) {
	logger := zap.NewNop()

	uid := "user-1"
	unawarded := []model.Order{
		{ID: "order-1", UserID: &uid, Status: model.OrderStatusDelivered},
		{ID: "order-2", UserID: &uid, Status: model.OrderStatusDelivered},
	}

	t.Run("Publishes one message per unawarded order", func(t *testing.T) {
		orders := &mocks.OrderRepository{}
		publisher := &mocks.Publisher{}
		p := publishers.NewAwardPublisher(orders, publisher, logger)

		orders.On("FindDeliveredWithoutAward", 100).Return(unawarded, nil)
		for _, order := range unawarded {
			body, _ := json.Marshal(service.AwardOrderMessage{OrderID: order.ID})
			publisher.On("Publish", mock.Anything, "", publishers.AwardQueue, body).Return(nil)
		}

		err := p.Publish(context.Background())

		assert.NoError(t, err)
		publisher.AssertNumberOfCalls(t, "Publish", 2)
	})

	t.Run("Nothing to publish is a no-op", func(t *testing.T) {
		orders := &mocks.OrderRepository{}
		publisher := &mocks.Publisher{}
		p := publishers.NewAwardPublisher(orders, publisher, logger)

		orders.On("FindDeliveredWithoutAward", 100).Return([]model.Order{}, nil)

		err := p.Publish(context.Background())

		assert.NoError(t, err)
		publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Broker failure on one message does not stop the sweep", func(t *testing.T) {
		orders := &mocks.OrderRepository{}
		publisher := &mocks.Publisher{}
		p := publishers.NewAwardPublisher(orders, publisher, logger)

		orders.On("FindDeliveredWithoutAward", 100).Return(unawarded, nil)
		firstBody, _ := json.Marshal(service.AwardOrderMessage{OrderID: "order-1"})
		secondBody, _ := json.Marshal(service.AwardOrderMessage{OrderID: "order-2"})
		publisher.On("Publish", mock.Anything, "", publishers.AwardQueue, firstBody).
			Return(errors.New("broker down"))
		publisher.On("Publish", mock.Anything, "", publishers.AwardQueue, secondBody).Return(nil)

		err := p.Publish(context.Background())

		assert.NoError(t, err)
		publisher.AssertNumberOfCalls(t, "Publish", 2)
	})

	t.Run("Repository failure propagates", func(t *testing.T) {
		orders := &mocks.OrderRepository{}
		publisher := &mocks.Publisher{}
		p := publishers.NewAwardPublisher(orders, publisher, logger)

		orders.On("FindDeliveredWithoutAward", 100).Return([]model.Order{}, errors.New("db down"))

		err := p.Publish(context.Background())

		assert.Error(t, err)
	})
}
