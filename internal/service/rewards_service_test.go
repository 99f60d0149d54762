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

func newRewardsService(t *testing.T) (service.RewardsService, *mocks.RewardsConfigRepository, *mocks.ProfileRepository) {
	t.Helper()
	configs := &mocks.RewardsConfigRepository{}
	profiles := &mocks.ProfileRepository{}
	svc := service.NewRewardsService(configs, profiles, zap.NewNop(), testMetrics)
	return svc, configs, profiles
}

func TestRewards_QuoteRedemption(t *testing.T) {
	userID := "user-1"

	t.Run("Full quote for an eligible user", func(t *testing.T) {
		svc, configs, profiles := newRewardsService(t)

		configs.On("Get", mock.Anything).Return(enabledConfig(), nil)
		profiles.On("FindByID", userID).Return(model.Profile{ID: userID, LoyaltyPoints: 2000}, nil)

		uid := userID
		quote, err := svc.QuoteRedemption(context.Background(), service.QuoteRedemptionCommand{
			UserID:         &uid,
			CartTotal:      1000,
			PointsToRedeem: 2000,
		})

		assert.NoError(t, err)
		assert.True(t, quote.Eligible)
		assert.Equal(t, int64(2000), quote.AvailablePoints)
		// cap is 20% of 1000 = 200 LE, i.e. 2000 points at 0.1
		assert.Equal(t, int64(2000), quote.MaxRedeemablePoints)
		assert.Equal(t, int64(2000), quote.PointsToRedeem)
		assert.Equal(t, 200.0, quote.Discount)
		assert.Equal(t, 800.0, quote.FinalTotal)
	})

	t.Run("Quote without candidate points reports ceiling only", func(t *testing.T) {
		svc, configs, profiles := newRewardsService(t)

		configs.On("Get", mock.Anything).Return(enabledConfig(), nil)
		profiles.On("FindByID", userID).Return(model.Profile{ID: userID, LoyaltyPoints: 500}, nil)

		uid := userID
		quote, err := svc.QuoteRedemption(context.Background(), service.QuoteRedemptionCommand{
			UserID:    &uid,
			CartTotal: 1000,
		})

		assert.NoError(t, err)
		assert.True(t, quote.Eligible)
		assert.Equal(t, int64(500), quote.MaxRedeemablePoints)
		assert.Equal(t, int64(0), quote.PointsToRedeem)
		assert.Equal(t, 1000.0, quote.FinalTotal)
	})

	t.Run("Guest gets an empty quote", func(t *testing.T) {
		svc, configs, profiles := newRewardsService(t)

		quote, err := svc.QuoteRedemption(context.Background(), service.QuoteRedemptionCommand{
			UserID:    nil,
			CartTotal: 1000,
		})

		assert.NoError(t, err)
		assert.False(t, quote.Eligible)
		assert.Equal(t, 1000.0, quote.FinalTotal)
		configs.AssertNotCalled(t, "Get", mock.Anything)
		profiles.AssertNotCalled(t, "FindByID", mock.Anything)
	})

	t.Run("Balance below minimum is ineligible without error", func(t *testing.T) {
		svc, configs, profiles := newRewardsService(t)

		configs.On("Get", mock.Anything).Return(enabledConfig(), nil)
		profiles.On("FindByID", userID).Return(model.Profile{ID: userID, LoyaltyPoints: 50}, nil)

		uid := userID
		quote, err := svc.QuoteRedemption(context.Background(), service.QuoteRedemptionCommand{
			UserID:    &uid,
			CartTotal: 1000,
		})

		assert.NoError(t, err)
		assert.False(t, quote.Eligible)
		assert.Equal(t, int64(50), quote.AvailablePoints)
		assert.Equal(t, int64(0), quote.MaxRedeemablePoints)
	})

	t.Run("Disabled system is ineligible without error", func(t *testing.T) {
		svc, configs, profiles := newRewardsService(t)

		cfg := enabledConfig()
		cfg.Enabled = false
		configs.On("Get", mock.Anything).Return(cfg, nil)
		profiles.On("FindByID", userID).Return(model.Profile{ID: userID, LoyaltyPoints: 2000}, nil)

		uid := userID
		quote, err := svc.QuoteRedemption(context.Background(), service.QuoteRedemptionCommand{
			UserID:    &uid,
			CartTotal: 1000,
		})

		assert.NoError(t, err)
		assert.False(t, quote.Eligible)
	})

	t.Run("Candidate above the discount cap is rejected", func(t *testing.T) {
		svc, configs, profiles := newRewardsService(t)

		configs.On("Get", mock.Anything).Return(enabledConfig(), nil)
		profiles.On("FindByID", userID).Return(model.Profile{ID: userID, LoyaltyPoints: 5000}, nil)

		uid := userID
		_, err := svc.QuoteRedemption(context.Background(), service.QuoteRedemptionCommand{
			UserID:         &uid,
			CartTotal:      1000,
			PointsToRedeem: 3000,
		})

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeExceedsMaxDiscount, serviceErr.Code)
	})

	t.Run("Candidate above the balance is rejected", func(t *testing.T) {
		svc, configs, profiles := newRewardsService(t)

		configs.On("Get", mock.Anything).Return(enabledConfig(), nil)
		profiles.On("FindByID", userID).Return(model.Profile{ID: userID, LoyaltyPoints: 150}, nil)

		uid := userID
		_, err := svc.QuoteRedemption(context.Background(), service.QuoteRedemptionCommand{
			UserID:         &uid,
			CartTotal:      1000,
			PointsToRedeem: 200,
		})

		var serviceErr service.Error
		assert.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, constants.ErrCodeInsufficientPoints, serviceErr.Code)
	})
}

func TestRewards_UpdateConfig(t *testing.T) {
	t.Run("Writes policy fields and returns the stored row", func(t *testing.T) {
		svc, configs, _ := newRewardsService(t)

		cmd := service.UpdateRewardsConfigCommand{
			PointsPerUnit:         2,
			RedemptionRate:        0.05,
			MinRedemptionPoints:   200,
			MaxDiscountPercentage: 30,
			Enabled:               true,
		}

		configs.On("Update", mock.Anything, mock.MatchedBy(func(cfg *model.RewardsConfig) bool {
			return cfg.ID == model.RewardsConfigID && cfg.PointsPerUnit == 2 && cfg.RedemptionRate == 0.05
		})).Return(nil)
		stored := model.RewardsConfig{ID: model.RewardsConfigID, PointsPerUnit: 2, RedemptionRate: 0.05,
			MinRedemptionPoints: 200, MaxDiscountPercentage: 30, Enabled: true}
		configs.On("Get", mock.Anything).Return(stored, nil)

		cfg, err := svc.UpdateConfig(context.Background(), cmd)

		assert.NoError(t, err)
		assert.Equal(t, stored, cfg)
		configs.AssertExpectations(t)
	})
}
