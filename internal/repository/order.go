package repository

import (
	"context"
	"errors"

	"github.com/Amrsono/The-Shop/internal/model"
	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("ORDER_NOT_FOUND")

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	CreateItems(ctx context.Context, items []model.OrderItem) error
	GetByID(orderID string) (model.Order, error)
	GetItems(orderID string) ([]model.OrderItem, error)
	List(limit, offset int) ([]model.Order, error)
	ListByUser(userID string, limit, offset int) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error
	// FindDeliveredWithoutAward returns delivered orders of authenticated
	// shoppers that still lack an earned ledger row. Input for the award
	// reconciliation publisher.
	FindDeliveredWithoutAward(limit int) ([]model.Order, error)
}

type order struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &order{db: db}
}

func (r *order) Create(ctx context.Context, o *model.Order) error {
	db := GetTx(ctx, r.db)
	return db.Create(o).Error
}

func (r *order) CreateItems(ctx context.Context, items []model.OrderItem) error {
	db := GetTx(ctx, r.db)
	return db.Create(&items).Error
}

func (r *order) GetByID(orderID string) (model.Order, error) {
	var o model.Order
	if err := r.db.Where("id = ?", orderID).First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Order{}, ErrOrderNotFound
		}
		return model.Order{}, err
	}
	return o, nil
}

func (r *order) GetItems(orderID string) ([]model.OrderItem, error) {
	var items []model.OrderItem
	if err := r.db.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *order) List(limit, offset int) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *order) ListByUser(userID string, limit, offset int) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *order) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	db := GetTx(ctx, r.db)
	return db.Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("status", status).Error
}

func (r *order) FindDeliveredWithoutAward(limit int) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.
		Joins("LEFT JOIN loyalty_transactions lt ON lt.order_id = orders.id AND lt.transaction_type = ?",
			model.TransactionTypeEarned).
		Where("orders.status = ? AND orders.user_id IS NOT NULL AND lt.id IS NULL",
			model.OrderStatusDelivered).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
