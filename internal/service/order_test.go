package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Amrsono/The-Shop/internal/constants"
	"github.com/Amrsono/The-Shop/internal/mocks"
	"github.com/Amrsono/The-Shop/internal/model"
	"github.com/Amrsono/The-Shop/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type orderDeps struct {
	txm      *mocks.TxManager
	orders   *mocks.OrderRepository
	products *mocks.ProductRepository
	profiles *mocks.ProfileRepository
	configs  *mocks.RewardsConfigRepository
	loyalty  *mocks.LoyaltyService
}

func newOrderService(t *testing.T) (service.OrderService, *orderDeps) {
	t.Helper()
	deps := &orderDeps{
		txm:      &mocks.TxManager{},
		orders:   &mocks.OrderRepository{},
		products: &mocks.ProductRepository{},
		profiles: &mocks.ProfileRepository{},
		configs:  &mocks.RewardsConfigRepository{},
		loyalty:  &mocks.LoyaltyService{},
	}
	svc := service.NewOrderService(deps.txm, deps.orders, deps.products, deps.profiles,
		deps.configs, deps.loyalty, zap.NewNop(), testMetrics)
	return svc, deps
}

func catalog() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Mug", Image: "mug.png", Price: 120.50, Category: "kitchen"},
		{ID: 2, Name: "Shirt", Image: "shirt.png", Price: 250, Category: "apparel"},
	}
}

func TestOrder_PlaceOrder(t *testing.T) {
	userID := "user-1"

	baseCommand := func() service.PlaceOrderCommand {
		uid := userID
		return service.PlaceOrderCommand{
			UserID:        &uid,
			Items:         []service.OrderItemCommand{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 1}},
			FullName:      "Jane Doe",
			Email:         "jane@example.com",
			Phone:         "01000000000",
			Address:       "1 Main St",
			City:          "Cairo",
			PaymentMethod: "cash_on_delivery",
		}
	}

	t.Run("Prices order from catalog snapshot", func(t *testing.T) {
		svc, deps := newOrderService(t)

		deps.products.On("GetByIDs", []int64{1, 2}).Return(catalog(), nil)
		deps.txm.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		deps.orders.On("Create", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
			return o.TotalAmount == 491.00 && o.Status == model.OrderStatusReceived
		})).Return(nil)
		deps.orders.On("CreateItems", mock.Anything, mock.MatchedBy(func(items []model.OrderItem) bool {
			return len(items) == 2 && items[0].Price == 120.50 && items[0].Quantity == 2
		})).Return(nil)

		result, err := svc.PlaceOrder(context.Background(), baseCommand())

		assert.NoError(t, err)
		assert.Equal(t, 491.00, result.Order.TotalAmount)
		assert.False(t, result.LoyaltyApplied)
		assert.Empty(t, result.LoyaltyError)
		deps.orders.AssertExpectations(t)
		deps.loyalty.AssertNotCalled(t, "RedeemForOrder",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Applies redemption discount and deducts points", func(t *testing.T) {
		svc, deps := newOrderService(t)

		cmd := baseCommand()
		cmd.PointsToRedeem = 100

		deps.products.On("GetByIDs", []int64{1, 2}).Return(catalog(), nil)
		deps.configs.On("Get", mock.Anything).Return(enabledConfig(), nil)
		deps.profiles.On("FindByID", userID).Return(model.Profile{ID: userID, LoyaltyPoints: 500}, nil)
		deps.txm.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		deps.orders.On("Create", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
			// 491 subtotal minus 100 points at 0.1 per point
			return o.TotalAmount == 481.00
		})).Return(nil)
		deps.orders.On("CreateItems", mock.Anything, mock.Anything).Return(nil)
		deps.loyalty.On("RedeemForOrder", mock.Anything, userID, mock.Anything, int64(100), 10.0).Return(nil)

		result, err := svc.PlaceOrder(context.Background(), cmd)

		assert.NoError(t, err)
		assert.True(t, result.LoyaltyApplied)
		assert.Equal(t, int64(100), result.PointsRedeemed)
		assert.Equal(t, 10.0, result.Discount)
		deps.loyalty.AssertExpectations(t)
	})

	t.Run("Order survives a failed point deduction", func(t *testing.T) {
		svc, deps := newOrderService(t)

		cmd := baseCommand()
		cmd.PointsToRedeem = 100

		deps.products.On("GetByIDs", []int64{1, 2}).Return(catalog(), nil)
		deps.configs.On("Get", mock.Anything).Return(enabledConfig(), nil)
		deps.profiles.On("FindByID", userID).Return(model.Profile{ID: userID, LoyaltyPoints: 500}, nil)
		deps.txm.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		deps.orders.On("Create", mock.Anything, mock.Anything).Return(nil)
		deps.orders.On("CreateItems", mock.Anything, mock.Anything).Return(nil)
		deps.loyalty.On("RedeemForOrder", mock.Anything, userID, mock.Anything, int64(100), 10.0).
			Return(service.NewServiceError(constants.ErrCodeOperationFailed, errors.New("db down")))

		result, err := svc.PlaceOrder(context.Background(), cmd)

		assert.NoError(t, err)
		assert.False(t, result.LoyaltyApplied)
		assert.Equal(t, constants.ErrCodeOperationFailed, result.LoyaltyError)
		assert.NotEmpty(t, result.Order.ID)
	})

	t.Run("Guest cannot redeem points", func(t *testing.T) {
		svc, deps := newOrderService(t)

		cmd := baseCommand()
		cmd.UserID = nil
		cmd.PointsToRedeem = 100

		deps.products.On("GetByIDs", []int64{1, 2}).Return(catalog(), nil)

		_, err := svc.PlaceOrder(context.Background(), cmd)

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeGuestRedemption, serviceErr.Code)
		deps.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Insufficient balance aborts checkout", func(t *testing.T) {
		svc, deps := newOrderService(t)

		cmd := baseCommand()
		cmd.PointsToRedeem = 150

		deps.products.On("GetByIDs", []int64{1, 2}).Return(catalog(), nil)
		deps.configs.On("Get", mock.Anything).Return(enabledConfig(), nil)
		deps.profiles.On("FindByID", userID).Return(model.Profile{ID: userID, LoyaltyPoints: 100}, nil)

		_, err := svc.PlaceOrder(context.Background(), cmd)

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeInsufficientPoints, serviceErr.Code)
		deps.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Empty order is rejected", func(t *testing.T) {
		svc, deps := newOrderService(t)

		cmd := baseCommand()
		cmd.Items = nil

		_, err := svc.PlaceOrder(context.Background(), cmd)

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeEmptyOrder, serviceErr.Code)
		deps.products.AssertNotCalled(t, "GetByIDs", mock.Anything)
	})

	t.Run("Unknown product is rejected", func(t *testing.T) {
		svc, deps := newOrderService(t)

		cmd := baseCommand()
		cmd.Items = []service.OrderItemCommand{{ProductID: 99, Quantity: 1}}

		deps.products.On("GetByIDs", []int64{99}).Return([]model.Product{}, nil)

		_, err := svc.PlaceOrder(context.Background(), cmd)

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeProductNotFound, serviceErr.Code)
	})
}

func TestOrder_UpdateStatus(t *testing.T) {
	t.Run("Delivered transition triggers the award", func(t *testing.T) {
		svc, deps := newOrderService(t)

		uid := "user-1"
		order := model.Order{ID: "order-1", UserID: &uid, Status: model.OrderStatusProcessing}
		deps.orders.On("GetByID", "order-1").Return(order, nil)
		deps.orders.On("UpdateStatus", mock.Anything, "order-1", model.OrderStatusDelivered).Return(nil)
		deps.loyalty.On("AwardForOrder", mock.Anything, "order-1").
			Return(service.AwardResult{Granted: true, Points: 500}, nil)

		updated, err := svc.UpdateStatus(context.Background(), service.UpdateOrderStatusCommand{
			OrderID: "order-1",
			Status:  model.OrderStatusDelivered,
		})

		assert.NoError(t, err)
		assert.Equal(t, model.OrderStatusDelivered, updated.Status)
		deps.loyalty.AssertExpectations(t)
	})

	t.Run("Award failure never reverts the status change", func(t *testing.T) {
		svc, deps := newOrderService(t)

		uid := "user-1"
		order := model.Order{ID: "order-1", UserID: &uid, Status: model.OrderStatusProcessing}
		deps.orders.On("GetByID", "order-1").Return(order, nil)
		deps.orders.On("UpdateStatus", mock.Anything, "order-1", model.OrderStatusDelivered).Return(nil)
		deps.loyalty.On("AwardForOrder", mock.Anything, "order-1").
			Return(service.AwardResult{}, service.NewServiceError(constants.ErrCodeOperationFailed, errors.New("db down")))

		updated, err := svc.UpdateStatus(context.Background(), service.UpdateOrderStatusCommand{
			OrderID: "order-1",
			Status:  model.OrderStatusDelivered,
		})

		assert.NoError(t, err)
		assert.Equal(t, model.OrderStatusDelivered, updated.Status)
	})

	t.Run("Rejects transition out of a terminal state", func(t *testing.T) {
		svc, deps := newOrderService(t)

		order := model.Order{ID: "order-1", Status: model.OrderStatusCancelled}
		deps.orders.On("GetByID", "order-1").Return(order, nil)

		_, err := svc.UpdateStatus(context.Background(), service.UpdateOrderStatusCommand{
			OrderID: "order-1",
			Status:  model.OrderStatusProcessing,
		})

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeInvalidStatusTransition, serviceErr.Code)
		deps.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Same status is a no-op", func(t *testing.T) {
		svc, deps := newOrderService(t)

		order := model.Order{ID: "order-1", Status: model.OrderStatusProcessing}
		deps.orders.On("GetByID", "order-1").Return(order, nil)

		updated, err := svc.UpdateStatus(context.Background(), service.UpdateOrderStatusCommand{
			OrderID: "order-1",
			Status:  model.OrderStatusProcessing,
		})

		assert.NoError(t, err)
		assert.Equal(t, model.OrderStatusProcessing, updated.Status)
		deps.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}
