package model

import "time"

type TransactionType string

const (
	TransactionTypeEarned          TransactionType = "earned"
	TransactionTypeRedeemed        TransactionType = "redeemed"
	TransactionTypeAdminAdjustment TransactionType = "admin_adjustment"
)

// LoyaltyTransaction is an append-only ledger row. The unique index on
// (order_id, transaction_type) is the idempotency key that prevents a second
// earned row for the same order; admin adjustments carry a NULL order_id and
// are not constrained by it.
type LoyaltyTransaction struct {
	ID              int64           `gorm:"column:id;primaryKey;autoIncrement;<-:create" json:"id"`
	UserID          string          `gorm:"column:user_id;type:char(36);index;not null" json:"user_id"`
	OrderID         *string         `gorm:"column:order_id;type:char(36);index:idx_order_type,unique" json:"order_id"`
	PointsChange    int64           `gorm:"column:points_change;not null" json:"points_change"`
	TransactionType TransactionType `gorm:"column:transaction_type;type:varchar(20);not null;index:idx_order_type,unique" json:"transaction_type"`
	Description     string          `gorm:"column:description;type:varchar(512)" json:"description"`
	CreatedAt       time.Time       `gorm:"column:created_at;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (LoyaltyTransaction) TableName() string {
	return "loyalty_transactions"
}
