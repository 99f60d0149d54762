package model

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type Profile struct {
	ID            string    `gorm:"column:id;primaryKey;type:char(36)" json:"id"`
	Email         string    `gorm:"column:email;type:varchar(255);not null" json:"email"`
	FullName      string    `gorm:"column:full_name;type:varchar(255)" json:"full_name"`
	Role          Role      `gorm:"column:role;type:varchar(10);default:'user'" json:"role"`
	LoyaltyPoints int64     `gorm:"column:loyalty_points;not null;default:0" json:"loyalty_points"`
	CreatedAt     time.Time `gorm:"column:created_at;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
