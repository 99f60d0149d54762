package repository

import (
	"context"
	"errors"

	"github.com/Amrsono/The-Shop/internal/model"
	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("PROFILE_NOT_FOUND")

type ProfileRepository interface {
	FindByID(userID string) (model.Profile, error)
	List(limit, offset int) ([]model.Profile, error)
	Count() (int64, error)
	// AdjustPoints applies delta to the stored balance as a single server-side
	// update clamped at zero, so concurrent mutations cannot lose updates or
	// drive the balance negative.
	AdjustPoints(ctx context.Context, userID string, delta int64) error
}

type profile struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profile{db: db}
}

func (r *profile) FindByID(userID string) (model.Profile, error) {
	var p model.Profile
	if err := r.db.Where("id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Profile{}, ErrProfileNotFound
		}
		return model.Profile{}, err
	}
	return p, nil
}

func (r *profile) List(limit, offset int) ([]model.Profile, error) {
	var profiles []model.Profile
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profile) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Profile{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *profile) AdjustPoints(ctx context.Context, userID string, delta int64) error {
	db := GetTx(ctx, r.db)

	// RowsAffected is not checked here: MySQL reports changed rows, and a
	// clamped deduction against a zero balance legitimately changes nothing.
	return db.Model(&model.Profile{}).
		Where("id = ?", userID).
		Update("loyalty_points", gorm.Expr("GREATEST(loyalty_points + ?, 0)", delta)).Error
}
