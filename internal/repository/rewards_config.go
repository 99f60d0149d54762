package repository

import (
	"context"
	"errors"

	"github.com/Amrsono/The-Shop/internal/model"
	"gorm.io/gorm"
)

var ErrConfigNotFound = errors.New("REWARDS_CONFIG_NOT_FOUND")

type RewardsConfigRepository interface {
	// Get reads the single active configuration row. Callers fetch it once
	// per flow invocation and pass the snapshot into the points math.
	Get(ctx context.Context) (model.RewardsConfig, error)
	Update(ctx context.Context, cfg *model.RewardsConfig) error
}

type rewardsConfig struct {
	db *gorm.DB
}

func NewRewardsConfigRepository(db *gorm.DB) RewardsConfigRepository {
	return &rewardsConfig{db: db}
}

func (r *rewardsConfig) Get(ctx context.Context) (model.RewardsConfig, error) {
	var cfg model.RewardsConfig
	err := r.db.WithContext(ctx).Where("id = ?", model.RewardsConfigID).First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.RewardsConfig{}, ErrConfigNotFound
		}
		return model.RewardsConfig{}, err
	}
	return cfg, nil
}

func (r *rewardsConfig) Update(ctx context.Context, cfg *model.RewardsConfig) error {
	cfg.ID = model.RewardsConfigID
	return r.db.WithContext(ctx).Model(&model.RewardsConfig{}).
		Where("id = ?", model.RewardsConfigID).
		Updates(map[string]interface{}{
			"points_per_unit":         cfg.PointsPerUnit,
			"redemption_rate":         cfg.RedemptionRate,
			"min_redemption_points":   cfg.MinRedemptionPoints,
			"max_discount_percentage": cfg.MaxDiscountPercentage,
			"enabled":                 cfg.Enabled,
		}).Error
}
