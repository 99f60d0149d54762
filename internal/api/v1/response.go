package v1

import "github.com/Amrsono/The-Shop/internal/model"

type PointsBalanceResponse struct {
	UserID              string `json:"user_id"`
	Balance             int64  `json:"balance"`
	MinRedemptionPoints int64  `json:"min_redemption_points"`
	Enabled             bool   `json:"enabled"`
}

type OrderDetailResponse struct {
	Order model.Order       `json:"order"`
	Items []model.OrderItem `json:"items"`
}
