package model

import "time"

type OrderStatus string

const (
	OrderStatusReceived   OrderStatus = "Order Received"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// allowedTransitions encodes the admin-driven order lifecycle. Cancelled and
// Delivered are terminal.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusReceived:   {OrderStatusProcessing, OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusDelivered, OrderStatusCancelled},
}

func IsValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusReceived, OrderStatusProcessing, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

func CanTransition(from, to OrderStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Order struct {
	ID              string      `gorm:"column:id;primaryKey;type:char(36);<-:create" json:"id"`
	UserID          *string     `gorm:"column:user_id;type:char(36);index" json:"user_id"`
	TotalAmount     float64     `gorm:"column:total_amount;not null" json:"total_amount"`
	Status          OrderStatus `gorm:"column:status;type:varchar(20);not null" json:"status"`
	PaymentMethod   string      `gorm:"column:payment_method;type:varchar(40)" json:"payment_method"`
	FullName        string      `gorm:"column:full_name;type:varchar(255)" json:"full_name"`
	Email           string      `gorm:"column:email;type:varchar(255)" json:"email"`
	Phone           string      `gorm:"column:phone;type:varchar(40)" json:"phone"`
	ShippingAddress string      `gorm:"column:shipping_address;type:varchar(512)" json:"shipping_address"`
	City            string      `gorm:"column:city;type:varchar(120)" json:"city"`
	CreatedAt       time.Time   `gorm:"column:created_at;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"column:updated_at;default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem snapshots the product at purchase time so historical orders are
// stable against catalog edits.
type OrderItem struct {
	ID        int64   `gorm:"column:id;primaryKey;autoIncrement;<-:create" json:"id"`
	OrderID   string  `gorm:"column:order_id;type:char(36);index;not null" json:"order_id"`
	ProductID int64   `gorm:"column:product_id;not null" json:"product_id"`
	Name      string  `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Image     string  `gorm:"column:image;type:varchar(512)" json:"image"`
	Price     float64 `gorm:"column:price;not null" json:"price"`
	Quantity  int     `gorm:"column:quantity;not null" json:"quantity"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
