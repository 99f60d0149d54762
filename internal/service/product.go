package service

import (
	"context"
	"errors"

	"github.com/Amrsono/The-Shop/internal/constants"
	"github.com/Amrsono/The-Shop/internal/model"
	"github.com/Amrsono/The-Shop/internal/repository"
	"go.uber.org/zap"
)

type ProductService interface {
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, productID int64) error
	Get(productID int64) (model.Product, error)
	List(category string, limit, offset int) ([]model.Product, error)
}

type productService struct {
	products repository.ProductRepository
	logger   *zap.Logger
}

func NewProductService(products repository.ProductRepository, logger *zap.Logger) ProductService {
	return &productService{products: products, logger: logger}
}

func (s *productService) Create(ctx context.Context, p *model.Product) error {
	if err := s.products.Create(ctx, p); err != nil {
		s.logger.Error("Failed to create product", zap.String("name", p.Name), zap.Error(err))
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.logger.Info("Product created", zap.Int64("productID", p.ID), zap.String("name", p.Name))
	return nil
}

func (s *productService) Update(ctx context.Context, p *model.Product) error {
	if err := s.products.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return NewServiceError(constants.ErrCodeProductNotFound, err)
		}
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return nil
}

func (s *productService) Delete(ctx context.Context, productID int64) error {
	if err := s.products.Delete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return NewServiceError(constants.ErrCodeProductNotFound, err)
		}
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.logger.Info("Product deleted", zap.Int64("productID", productID))
	return nil
}

func (s *productService) Get(productID int64) (model.Product, error) {
	p, err := s.products.GetByID(productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return model.Product{}, NewServiceError(constants.ErrCodeProductNotFound, err)
		}
		return model.Product{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return p, nil
}

func (s *productService) List(category string, limit, offset int) ([]model.Product, error) {
	products, err := s.products.List(category, limit, offset)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return products, nil
}
