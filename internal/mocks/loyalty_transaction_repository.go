package mocks

import (
	"context"

	"github.com/Amrsono/The-Shop/internal/model"
	"github.com/stretchr/testify/mock"
)

type LoyaltyTransactionRepository struct {
	mock.Mock
}

func (m *LoyaltyTransactionRepository) Create(ctx context.Context, tx *model.LoyaltyTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *LoyaltyTransactionRepository) GetByOrderAndType(orderID string, txType model.TransactionType) (*model.LoyaltyTransaction, error) {
	args := m.Called(orderID, txType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoyaltyTransaction), args.Error(1)
}

func (m *LoyaltyTransactionRepository) ListByUser(userID string, limit, offset int) ([]model.LoyaltyTransaction, error) {
	args := m.Called(userID, limit, offset)
	return args.Get(0).([]model.LoyaltyTransaction), args.Error(1)
}

func (m *LoyaltyTransactionRepository) CountByUser(userID string) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}
