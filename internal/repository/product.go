package repository

import (
	"context"
	"errors"

	"github.com/Amrsono/The-Shop/internal/model"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("PRODUCT_NOT_FOUND")

type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, productID int64) error
	GetByID(productID int64) (model.Product, error)
	GetByIDs(productIDs []int64) ([]model.Product, error)
	List(category string, limit, offset int) ([]model.Product, error)
}

type product struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &product{db: db}
}

func (r *product) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *product) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":        p.Name,
			"description": p.Description,
			"price":       p.Price,
			"image":       p.Image,
			"category":    p.Category,
			"stock":       p.Stock,
		}).Error
}

func (r *product) Delete(ctx context.Context, productID int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", productID).Delete(&model.Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *product) GetByID(productID int64) (model.Product, error) {
	var p model.Product
	if err := r.db.Where("id = ?", productID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Product{}, ErrProductNotFound
		}
		return model.Product{}, err
	}
	return p, nil
}

func (r *product) GetByIDs(productIDs []int64) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *product) List(category string, limit, offset int) ([]model.Product, error) {
	query := r.db.Order("created_at DESC").Limit(limit).Offset(offset)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
