package mocks

import (
	"context"

	"github.com/Amrsono/The-Shop/internal/model"
	"github.com/Amrsono/The-Shop/internal/service"
	"github.com/stretchr/testify/mock"
)

type LoyaltyService struct {
	mock.Mock
}

func (m *LoyaltyService) AwardForOrder(ctx context.Context, orderID string) (service.AwardResult, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(service.AwardResult), args.Error(1)
}

func (m *LoyaltyService) RedeemForOrder(ctx context.Context, userID, orderID string, points int64, discount float64) error {
	args := m.Called(ctx, userID, orderID, points, discount)
	return args.Error(0)
}

func (m *LoyaltyService) Adjust(ctx context.Context, cmd service.AdjustPointsCommand) (service.AdjustPointsResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.AdjustPointsResult), args.Error(1)
}

func (m *LoyaltyService) Balance(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *LoyaltyService) History(userID string, limit, offset int) ([]model.LoyaltyTransaction, int64, error) {
	args := m.Called(userID, limit, offset)
	return args.Get(0).([]model.LoyaltyTransaction), args.Get(1).(int64), args.Error(2)
}
