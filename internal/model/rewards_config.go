package model

import "time"

// RewardsConfigID is the fixed key of the single active configuration row.
const RewardsConfigID int64 = 1

type RewardsConfig struct {
	ID                    int64     `gorm:"column:id;primaryKey" json:"id"`
	PointsPerUnit         float64   `gorm:"column:points_per_unit;not null;default:1" json:"points_per_unit"`
	RedemptionRate        float64   `gorm:"column:redemption_rate;not null;default:0.1" json:"redemption_rate"`
	MinRedemptionPoints   int64     `gorm:"column:min_redemption_points;not null;default:100" json:"min_redemption_points"`
	MaxDiscountPercentage float64   `gorm:"column:max_discount_percentage;not null;default:50" json:"max_discount_percentage"`
	Enabled               bool      `gorm:"column:enabled;not null;default:true" json:"enabled"`
	UpdatedAt             time.Time `gorm:"column:updated_at;default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`
}

func (RewardsConfig) TableName() string {
	return "rewards_config"
}
