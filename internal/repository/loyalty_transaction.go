package repository

import (
	"context"
	"errors"

	"github.com/Amrsono/The-Shop/internal/model"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrTransactionExisted  = errors.New("TRANSACTION_EXISTED")
	ErrTransactionNotFound = errors.New("TRANSACTION_NOT_FOUND")
)

type LoyaltyTransactionRepository interface {
	Create(ctx context.Context, tx *model.LoyaltyTransaction) error
	GetByOrderAndType(orderID string, txType model.TransactionType) (*model.LoyaltyTransaction, error)
	ListByUser(userID string, limit, offset int) ([]model.LoyaltyTransaction, error)
	CountByUser(userID string) (int64, error)
}

type loyaltyTransaction struct {
	db *gorm.DB
}

func NewLoyaltyTransactionRepository(db *gorm.DB) LoyaltyTransactionRepository {
	return &loyaltyTransaction{db: db}
}

func (r *loyaltyTransaction) Create(ctx context.Context, tx *model.LoyaltyTransaction) error {
	db := GetTx(ctx, r.db)

	err := db.Create(tx).Error
	if err == nil {
		return nil
	}

	// Duplicate (order_id, transaction_type) means the ledger already holds
	// this entry; callers treat it as an idempotent no-op.
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrTransactionExisted
	}

	return err
}

func (r *loyaltyTransaction) GetByOrderAndType(orderID string, txType model.TransactionType) (*model.LoyaltyTransaction, error) {
	var tx model.LoyaltyTransaction
	err := r.db.Where("order_id = ? AND transaction_type = ?", orderID, txType).First(&tx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func (r *loyaltyTransaction) ListByUser(userID string, limit, offset int) ([]model.LoyaltyTransaction, error) {
	var txs []model.LoyaltyTransaction
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *loyaltyTransaction) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.LoyaltyTransaction{}).Where("user_id = ?", userID).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
