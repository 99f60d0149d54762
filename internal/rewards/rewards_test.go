package rewards_test

import (
	"math"
	"testing"

	"github.com/Amrsono/The-Shop/internal/model"
	"github.com/Amrsono/The-Shop/internal/rewards"
	"github.com/stretchr/testify/assert"
)

func defaultConfig() model.RewardsConfig {
	return model.RewardsConfig{
		ID:                    model.RewardsConfigID,
		PointsPerUnit:         1.0,
		RedemptionRate:        0.10,
		MinRedemptionPoints:   100,
		MaxDiscountPercentage: 50,
		Enabled:               true,
	}
}

func TestPointsEarned(t *testing.T) {
	tests := []struct {
		name          string
		orderAmount   float64
		pointsPerUnit float64
		want          int64
	}{
		{"whole amount", 750, 1.0, 750},
		{"fractional amount floors", 99.99, 1.0, 99},
		{"fractional rate floors", 1000, 0.5, 500},
		{"rate below one point", 1, 0.5, 0},
		{"zero amount", 0, 1.0, 0},
		{"negative amount clamps to zero", -50, 1.0, 0},
		{"zero rate", 1000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rewards.PointsEarned(tt.orderAmount, tt.pointsPerUnit))
		})
	}
}

func TestDiscountFromPoints(t *testing.T) {
	tests := []struct {
		name   string
		points int64
		rate   float64
		want   float64
	}{
		{"2000 points at 0.10", 2000, 0.10, 200.00},
		{"odd points truncate to cents", 333, 0.10, 33.30},
		{"sub-cent value truncates", 1, 0.001, 0},
		{"zero points", 0, 0.10, 0},
		{"negative points", -100, 0.10, 0},
		{"zero rate", 1000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, rewards.DiscountFromPoints(tt.points, tt.rate), 1e-9)
		})
	}
}

func TestDiscountFromPoints_NeverRoundsUp(t *testing.T) {
	rates := []float64{0.01, 0.03, 0.10, 0.25, 0.333, 1.0}
	for _, rate := range rates {
		for points := int64(0); points <= 5000; points += 7 {
			discount := rewards.DiscountFromPoints(points, rate)

			// Whole cents only.
			cents := discount * 100
			assert.InDelta(t, math.Round(cents), cents, 1e-6,
				"sub-cent discount for points=%d rate=%v", points, rate)

			// Never exceeds the exact value.
			assert.LessOrEqual(t, discount, float64(points)*rate+1e-9,
				"rounded up for points=%d rate=%v", points, rate)
		}
	}
}

func TestMaxRedeemablePoints(t *testing.T) {
	cfg := defaultConfig()

	t.Run("bounded by balance", func(t *testing.T) {
		// maxDiscount=500, pointsForMaxDiscount=5000, balance=2000.
		assert.Equal(t, int64(2000), rewards.MaxRedeemablePoints(1000, 2000, cfg))
	})

	t.Run("bounded by max discount cap", func(t *testing.T) {
		// maxDiscount=50, pointsForMaxDiscount=500.
		assert.Equal(t, int64(500), rewards.MaxRedeemablePoints(100, 2000, cfg))
	})

	t.Run("balance below minimum redeems nothing", func(t *testing.T) {
		assert.Equal(t, int64(0), rewards.MaxRedeemablePoints(1000, 50, cfg))
	})

	t.Run("zero order amount", func(t *testing.T) {
		assert.Equal(t, int64(0), rewards.MaxRedeemablePoints(0, 2000, cfg))
	})

	t.Run("resulting discount never exceeds the cap", func(t *testing.T) {
		amounts := []float64{1, 9.99, 100, 750.50, 1000, 12345.67}
		balances := []int64{100, 999, 2000, 100000}
		for _, amount := range amounts {
			for _, balance := range balances {
				pts := rewards.MaxRedeemablePoints(amount, balance, cfg)
				discount := rewards.DiscountFromPoints(pts, cfg.RedemptionRate)
				assert.LessOrEqual(t, discount, rewards.MaxDiscountAmount(amount, cfg)+1e-9,
					"amount=%v balance=%d", amount, balance)
			}
		}
	})
}

func TestValidateRedemption(t *testing.T) {
	cfg := defaultConfig()

	tests := []struct {
		name        string
		points      int64
		available   int64
		orderAmount float64
		cfg         model.RewardsConfig
		wantErr     error
	}{
		{"valid redemption", 2000, 2000, 1000, cfg, nil},
		{"exactly minimum", 100, 2000, 1000, cfg, nil},
		{"below minimum", 99, 2000, 1000, cfg, rewards.ErrBelowMinimum},
		{"insufficient balance", 150, 100, 1000, cfg, rewards.ErrInsufficientBalance},
		{"exceeds max discount", 6000, 10000, 1000, cfg, rewards.ErrExceedsMaxDiscount},
		{"disabled wins over any input", 2000, 2000, 1000, disabled(cfg), rewards.ErrSystemDisabled},
		{"disabled rejects even tiny amounts", 1, 1, 1, disabled(cfg), rewards.ErrSystemDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rewards.ValidateRedemption(tt.points, tt.available, tt.orderAmount, tt.cfg)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("accepts only inputs satisfying all rules", func(t *testing.T) {
		for points := int64(0); points <= 6000; points += 250 {
			err := rewards.ValidateRedemption(points, 2000, 1000, cfg)
			ok := points >= cfg.MinRedemptionPoints &&
				points <= 2000 &&
				rewards.DiscountFromPoints(points, cfg.RedemptionRate) <= rewards.MaxDiscountAmount(1000, cfg)
			if ok {
				assert.NoError(t, err, "points=%d", points)
			} else {
				assert.Error(t, err, "points=%d", points)
			}
		}
	})
}

func TestFinalTotal(t *testing.T) {
	assert.InDelta(t, 800.0, rewards.FinalTotal(1000, 200), 1e-9)
	assert.InDelta(t, 0.0, rewards.FinalTotal(100, 150), 1e-9)
	assert.InDelta(t, 1000.0, rewards.FinalTotal(1000, 0), 1e-9)
}

// Worked example: 1000 LE order, 2000 point balance, default economy.
func TestRedemptionScenario(t *testing.T) {
	cfg := defaultConfig()

	maxPoints := rewards.MaxRedeemablePoints(1000, 2000, cfg)
	assert.Equal(t, int64(2000), maxPoints)

	assert.NoError(t, rewards.ValidateRedemption(maxPoints, 2000, 1000, cfg))

	discount := rewards.DiscountFromPoints(maxPoints, cfg.RedemptionRate)
	assert.InDelta(t, 200.00, discount, 1e-9)
	assert.InDelta(t, 800.00, rewards.FinalTotal(1000, discount), 1e-9)
}

func disabled(cfg model.RewardsConfig) model.RewardsConfig {
	cfg.Enabled = false
	return cfg
}
