package model

import "time"

type Product struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement;<-:create" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Price       float64   `gorm:"column:price;not null" json:"price"`
	Image       string    `gorm:"column:image;type:varchar(512)" json:"image"`
	Category    string    `gorm:"column:category;type:varchar(120);index" json:"category"`
	Stock       int       `gorm:"column:stock;not null;default:0" json:"stock"`
	CreatedAt   time.Time `gorm:"column:created_at;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
