package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Amrsono/The-Shop/internal/constants"
	"github.com/Amrsono/The-Shop/internal/metrics"
	"github.com/Amrsono/The-Shop/internal/model"
	"github.com/Amrsono/The-Shop/internal/repository"
	"github.com/Amrsono/The-Shop/internal/rewards"
	"go.uber.org/zap"
)

type LoyaltyService interface {
	// AwardForOrder credits points for a delivered order. Safe to call any
	// number of times for the same order: the (orderID, earned) ledger key
	// guarantees at most one credit.
	AwardForOrder(ctx context.Context, orderID string) (AwardResult, error)
	// RedeemForOrder writes the redemption side of a placed order: a negative
	// ledger row plus the balance decrement.
	RedeemForOrder(ctx context.Context, userID, orderID string, points int64, discount float64) error
	Adjust(ctx context.Context, cmd AdjustPointsCommand) (AdjustPointsResult, error)
	Balance(userID string) (int64, error)
	History(userID string, limit, offset int) ([]model.LoyaltyTransaction, int64, error)
}

type loyalty struct {
	txManager  repository.TxManager
	profiles   repository.ProfileRepository
	ledger     repository.LoyaltyTransactionRepository
	orders     repository.OrderRepository
	configRepo repository.RewardsConfigRepository
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

func NewLoyaltyService(txManager repository.TxManager, profiles repository.ProfileRepository,
	ledger repository.LoyaltyTransactionRepository, orders repository.OrderRepository,
	configRepo repository.RewardsConfigRepository, logger *zap.Logger, metrics *metrics.Metrics) LoyaltyService {
	return &loyalty{txManager: txManager, profiles: profiles, ledger: ledger, orders: orders,
		configRepo: configRepo, logger: logger, metrics: metrics}
}

func (s *loyalty) AwardForOrder(ctx context.Context, orderID string) (AwardResult, error) {
	order, err := s.orders.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return AwardResult{}, NewServiceError(constants.ErrCodeOrderNotFound, err)
		}
		return AwardResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if order.UserID == nil {
		s.logger.Debug("Skipping award for guest order", zap.String("orderID", orderID))
		return AwardResult{}, nil
	}

	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		return AwardResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if !cfg.Enabled {
		s.logger.Debug("Rewards disabled, skipping award", zap.String("orderID", orderID))
		return AwardResult{}, nil
	}

	points := rewards.PointsEarned(order.TotalAmount, cfg.PointsPerUnit)
	if points <= 0 {
		return AwardResult{}, nil
	}

	if _, err := s.ledger.GetByOrderAndType(orderID, model.TransactionTypeEarned); err == nil {
		s.logger.Info("Points already awarded for order", zap.String("orderID", orderID))
		return AwardResult{AlreadyAwarded: true, Points: points}, nil
	} else if !errors.Is(err, repository.ErrTransactionNotFound) {
		return AwardResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	transaction := model.LoyaltyTransaction{
		UserID:          *order.UserID,
		OrderID:         &order.ID,
		PointsChange:    points,
		TransactionType: model.TransactionTypeEarned,
		Description:     fmt.Sprintf("Earned %d points for order %s", points, order.ID),
		CreatedAt:       time.Now(),
	}

	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.ledger.Create(ctx, &transaction); err != nil {
			return err
		}
		return s.profiles.AdjustPoints(ctx, *order.UserID, points)
	})

	if errors.Is(err, repository.ErrTransactionExisted) {
		// Lost the race against a concurrent award of the same order.
		s.logger.Info("Concurrent award detected, treating as already granted",
			zap.String("orderID", orderID))
		return AwardResult{AlreadyAwarded: true, Points: points}, nil
	}

	if err != nil {
		s.logger.Error("Failed to award points",
			zap.String("orderID", orderID),
			zap.String("userID", *order.UserID),
			zap.Int64("points", points),
			zap.Error(err))
		return AwardResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.metrics.RecordPointsAwarded(points)

	s.logger.Info("Points awarded",
		zap.String("orderID", orderID),
		zap.String("userID", *order.UserID),
		zap.Int64("points", points))

	return AwardResult{Granted: true, Points: points}, nil
}

func (s *loyalty) RedeemForOrder(ctx context.Context, userID, orderID string, points int64, discount float64) error {
	transaction := model.LoyaltyTransaction{
		UserID:          userID,
		OrderID:         &orderID,
		PointsChange:    -points,
		TransactionType: model.TransactionTypeRedeemed,
		Description:     fmt.Sprintf("Redeemed %d points for %.2f LE discount on order %s", points, discount, orderID),
		CreatedAt:       time.Now(),
	}

	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.ledger.Create(ctx, &transaction); err != nil {
			return err
		}
		return s.profiles.AdjustPoints(ctx, userID, -points)
	})

	if err != nil {
		s.logger.Error("Failed to record redemption",
			zap.String("orderID", orderID),
			zap.String("userID", userID),
			zap.Int64("points", points),
			zap.Error(err))
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.metrics.RecordPointsRedeemed(points)

	s.logger.Info("Points redeemed",
		zap.String("orderID", orderID),
		zap.String("userID", userID),
		zap.Int64("points", points),
		zap.Float64("discount", discount))

	return nil
}

func (s *loyalty) Adjust(ctx context.Context, cmd AdjustPointsCommand) (AdjustPointsResult, error) {
	if cmd.Amount <= 0 {
		return AdjustPointsResult{}, NewServiceError(constants.ErrCodeInvalidAdjustment,
			errors.New("adjustment amount must be positive"))
	}

	if _, err := s.profiles.FindByID(cmd.UserID); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return AdjustPointsResult{}, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return AdjustPointsResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	pointsChange := cmd.Amount
	if cmd.Direction == AdjustDirectionDeduct {
		pointsChange = -cmd.Amount
	}

	description := cmd.Reason
	if description == "" {
		verb := "added"
		if cmd.Direction == AdjustDirectionDeduct {
			verb = "deducted"
		}
		description = fmt.Sprintf("Admin %s %d points", verb, cmd.Amount)
	}

	// The ledger records the operator's requested delta; the stored balance
	// is clamped at zero, so the two can diverge on an over-deduction.
	transaction := model.LoyaltyTransaction{
		UserID:          cmd.UserID,
		PointsChange:    pointsChange,
		TransactionType: model.TransactionTypeAdminAdjustment,
		Description:     description,
		CreatedAt:       time.Now(),
	}

	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.ledger.Create(ctx, &transaction); err != nil {
			return err
		}
		return s.profiles.AdjustPoints(ctx, cmd.UserID, pointsChange)
	})

	if err != nil {
		s.logger.Error("Failed to adjust points",
			zap.String("userID", cmd.UserID),
			zap.Int64("pointsChange", pointsChange),
			zap.Error(err))
		return AdjustPointsResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	profile, err := s.profiles.FindByID(cmd.UserID)
	if err != nil {
		return AdjustPointsResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.metrics.RecordPointsAdjusted(string(cmd.Direction))

	s.logger.Info("Points adjusted",
		zap.String("userID", cmd.UserID),
		zap.Int64("pointsChange", pointsChange),
		zap.Int64("newBalance", profile.LoyaltyPoints))

	return AdjustPointsResult{Transaction: transaction, NewBalance: profile.LoyaltyPoints}, nil
}

func (s *loyalty) Balance(userID string) (int64, error) {
	profile, err := s.profiles.FindByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return 0, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return 0, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return profile.LoyaltyPoints, nil
}

func (s *loyalty) History(userID string, limit, offset int) ([]model.LoyaltyTransaction, int64, error) {
	transactions, err := s.ledger.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, 0, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	total, err := s.ledger.CountByUser(userID)
	if err != nil {
		return nil, 0, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return transactions, total, nil
}
