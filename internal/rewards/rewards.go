// Package rewards holds the pure arithmetic of the loyalty points economy.
// Functions here are deterministic, perform no I/O, and take the active
// configuration as an argument so every caller computes against one
// consistent snapshot.
package rewards

import (
	"errors"
	"math"

	"github.com/Amrsono/The-Shop/internal/model"
)

var (
	ErrSystemDisabled      = errors.New("REWARDS_DISABLED")
	ErrBelowMinimum        = errors.New("BELOW_MIN_REDEMPTION")
	ErrInsufficientBalance = errors.New("INSUFFICIENT_POINTS")
	ErrExceedsMaxDiscount  = errors.New("EXCEEDS_MAX_DISCOUNT")
)

// PointsEarned returns the points credited for an order amount. Non-positive
// amounts earn nothing.
func PointsEarned(orderAmount, pointsPerUnit float64) int64 {
	if orderAmount <= 0 || pointsPerUnit <= 0 {
		return 0
	}
	return int64(math.Floor(orderAmount * pointsPerUnit))
}

// DiscountFromPoints converts points to a currency discount, truncated to two
// decimal places. Truncation (never rounding) guarantees the discount can
// never exceed what the points economy backs.
func DiscountFromPoints(points int64, redemptionRate float64) float64 {
	if points <= 0 || redemptionRate <= 0 {
		return 0
	}
	return math.Floor(float64(points)*redemptionRate*100) / 100
}

// MaxDiscountAmount is the cap on the redeemed discount for an order.
func MaxDiscountAmount(orderAmount float64, cfg model.RewardsConfig) float64 {
	if orderAmount <= 0 {
		return 0
	}
	return orderAmount * cfg.MaxDiscountPercentage / 100
}

// MaxRedeemablePoints returns the largest point amount the user may redeem
// against the order: bounded by their balance and by the points whose
// discount stays within the max-discount cap.
func MaxRedeemablePoints(orderAmount float64, availablePoints int64, cfg model.RewardsConfig) int64 {
	if availablePoints < cfg.MinRedemptionPoints {
		return 0
	}
	if cfg.RedemptionRate <= 0 {
		return 0
	}

	pointsForMaxDiscount := int64(math.Floor(MaxDiscountAmount(orderAmount, cfg) / cfg.RedemptionRate))
	if availablePoints < pointsForMaxDiscount {
		return availablePoints
	}
	return pointsForMaxDiscount
}

// ValidateRedemption checks a candidate redemption against the policy. It
// returns the first violated rule; a nil return means the redemption
// satisfies all of them.
func ValidateRedemption(pointsToRedeem, availablePoints int64, orderAmount float64, cfg model.RewardsConfig) error {
	if !cfg.Enabled {
		return ErrSystemDisabled
	}

	if pointsToRedeem < cfg.MinRedemptionPoints {
		return ErrBelowMinimum
	}

	if pointsToRedeem > availablePoints {
		return ErrInsufficientBalance
	}

	discount := DiscountFromPoints(pointsToRedeem, cfg.RedemptionRate)
	if discount > MaxDiscountAmount(orderAmount, cfg) {
		return ErrExceedsMaxDiscount
	}

	return nil
}

// FinalTotal applies a discount to a cart total, clamped at zero.
func FinalTotal(cartTotal, discount float64) float64 {
	total := cartTotal - discount
	if total < 0 {
		return 0
	}
	return total
}
