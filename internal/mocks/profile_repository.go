package mocks

import (
	"context"

	"github.com/Amrsono/The-Shop/internal/model"
	"github.com/stretchr/testify/mock"
)

type ProfileRepository struct {
	mock.Mock
}

func (m *ProfileRepository) FindByID(userID string) (model.Profile, error) {
	args := m.Called(userID)
	return args.Get(0).(model.Profile), args.Error(1)
}

func (m *ProfileRepository) List(limit, offset int) ([]model.Profile, error) {
	args := m.Called(limit, offset)
	return args.Get(0).([]model.Profile), args.Error(1)
}

func (m *ProfileRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProfileRepository) AdjustPoints(ctx context.Context, userID string, delta int64) error {
	args := m.Called(ctx, userID, delta)
	return args.Error(0)
}
