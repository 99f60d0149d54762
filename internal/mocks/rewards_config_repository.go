package mocks

import (
	"context"

	"github.com/Amrsono/The-Shop/internal/model"
	"github.com/stretchr/testify/mock"
)

type RewardsConfigRepository struct {
	mock.Mock
}

func (m *RewardsConfigRepository) Get(ctx context.Context) (model.RewardsConfig, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.RewardsConfig), args.Error(1)
}

func (m *RewardsConfigRepository) Update(ctx context.Context, cfg *model.RewardsConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}
