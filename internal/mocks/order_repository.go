package mocks

import (
	"context"

	"github.com/Amrsono/The-Shop/internal/model"
	"github.com/stretchr/testify/mock"
)

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) Create(ctx context.Context, o *model.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *OrderRepository) CreateItems(ctx context.Context, items []model.OrderItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *OrderRepository) GetByID(orderID string) (model.Order, error) {
	args := m.Called(orderID)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *OrderRepository) GetItems(orderID string) ([]model.OrderItem, error) {
	args := m.Called(orderID)
	return args.Get(0).([]model.OrderItem), args.Error(1)
}

func (m *OrderRepository) List(limit, offset int) ([]model.Order, error) {
	args := m.Called(limit, offset)
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *OrderRepository) ListByUser(userID string, limit, offset int) ([]model.Order, error) {
	args := m.Called(userID, limit, offset)
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *OrderRepository) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *OrderRepository) FindDeliveredWithoutAward(limit int) ([]model.Order, error) {
	args := m.Called(limit)
	return args.Get(0).([]model.Order), args.Error(1)
}
