package service

import (
	"context"
	"errors"

	"github.com/Amrsono/The-Shop/internal/constants"
	"github.com/Amrsono/The-Shop/internal/metrics"
	"github.com/Amrsono/The-Shop/internal/model"
	"github.com/Amrsono/The-Shop/internal/repository"
	"github.com/Amrsono/The-Shop/internal/rewards"
	"go.uber.org/zap"
)

type RewardsService interface {
	GetConfig(ctx context.Context) (model.RewardsConfig, error)
	UpdateConfig(ctx context.Context, cmd UpdateRewardsConfigCommand) (model.RewardsConfig, error)
	// QuoteRedemption answers the checkout widget: eligibility, the maximum
	// redeemable amount, and the priced outcome of a candidate amount. A
	// candidate that fails validation returns the specific policy error
	// instead of a silently clamped quote.
	QuoteRedemption(ctx context.Context, cmd QuoteRedemptionCommand) (RedemptionQuote, error)
}

type rewardsService struct {
	configRepo repository.RewardsConfigRepository
	profiles   repository.ProfileRepository
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

func NewRewardsService(configRepo repository.RewardsConfigRepository, profiles repository.ProfileRepository,
	logger *zap.Logger, metrics *metrics.Metrics) RewardsService {
	return &rewardsService{configRepo: configRepo, profiles: profiles, logger: logger, metrics: metrics}
}

func (s *rewardsService) GetConfig(ctx context.Context) (model.RewardsConfig, error) {
	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		return model.RewardsConfig{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return cfg, nil
}

func (s *rewardsService) UpdateConfig(ctx context.Context, cmd UpdateRewardsConfigCommand) (model.RewardsConfig, error) {
	cfg := model.RewardsConfig{
		ID:                    model.RewardsConfigID,
		PointsPerUnit:         cmd.PointsPerUnit,
		RedemptionRate:        cmd.RedemptionRate,
		MinRedemptionPoints:   cmd.MinRedemptionPoints,
		MaxDiscountPercentage: cmd.MaxDiscountPercentage,
		Enabled:               cmd.Enabled,
	}

	if err := s.configRepo.Update(ctx, &cfg); err != nil {
		s.logger.Error("Failed to update rewards config", zap.Error(err))
		return model.RewardsConfig{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.logger.Info("Rewards config updated",
		zap.Float64("pointsPerUnit", cfg.PointsPerUnit),
		zap.Float64("redemptionRate", cfg.RedemptionRate),
		zap.Int64("minRedemptionPoints", cfg.MinRedemptionPoints),
		zap.Float64("maxDiscountPercentage", cfg.MaxDiscountPercentage),
		zap.Bool("enabled", cfg.Enabled))

	return s.GetConfig(ctx)
}

func (s *rewardsService) QuoteRedemption(ctx context.Context, cmd QuoteRedemptionCommand) (RedemptionQuote, error) {
	quote := RedemptionQuote{FinalTotal: cmd.CartTotal}

	// Guests cannot redeem; the widget renders nothing.
	if cmd.UserID == nil {
		return quote, nil
	}

	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		return RedemptionQuote{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	quote.MinRedemptionPoints = cfg.MinRedemptionPoints

	profile, err := s.profiles.FindByID(*cmd.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return RedemptionQuote{}, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return RedemptionQuote{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	quote.AvailablePoints = profile.LoyaltyPoints

	if !cfg.Enabled || profile.LoyaltyPoints < cfg.MinRedemptionPoints {
		return quote, nil
	}

	quote.Eligible = true
	quote.MaxRedeemablePoints = rewards.MaxRedeemablePoints(cmd.CartTotal, profile.LoyaltyPoints, cfg)

	if cmd.PointsToRedeem == 0 {
		return quote, nil
	}

	if err := rewards.ValidateRedemption(cmd.PointsToRedeem, profile.LoyaltyPoints, cmd.CartTotal, cfg); err != nil {
		s.metrics.RecordRedemptionRejected(err.Error())
		return RedemptionQuote{}, redemptionError(err)
	}

	quote.PointsToRedeem = cmd.PointsToRedeem
	quote.Discount = rewards.DiscountFromPoints(cmd.PointsToRedeem, cfg.RedemptionRate)
	quote.FinalTotal = rewards.FinalTotal(cmd.CartTotal, quote.Discount)

	return quote, nil
}

// redemptionError maps a points-math sentinel to its service error code.
func redemptionError(err error) error {
	switch {
	case errors.Is(err, rewards.ErrSystemDisabled):
		return NewServiceError(constants.ErrCodeRewardsDisabled, err)
	case errors.Is(err, rewards.ErrBelowMinimum):
		return NewServiceError(constants.ErrCodeBelowMinRedemption, err)
	case errors.Is(err, rewards.ErrInsufficientBalance):
		return NewServiceError(constants.ErrCodeInsufficientPoints, err)
	case errors.Is(err, rewards.ErrExceedsMaxDiscount):
		return NewServiceError(constants.ErrCodeExceedsMaxDiscount, err)
	default:
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}
}
