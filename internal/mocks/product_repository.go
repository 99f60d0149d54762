package mocks

import (
	"context"

	"github.com/Amrsono/The-Shop/internal/model"
	"github.com/stretchr/testify/mock"
)

type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) Create(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepository) Update(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepository) Delete(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *ProductRepository) GetByID(productID int64) (model.Product, error) {
	args := m.Called(productID)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *ProductRepository) GetByIDs(productIDs []int64) ([]model.Product, error) {
	args := m.Called(productIDs)
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *ProductRepository) List(category string, limit, offset int) ([]model.Product, error) {
	args := m.Called(category, limit, offset)
	return args.Get(0).([]model.Product), args.Error(1)
}
