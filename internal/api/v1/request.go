package v1

type OrderItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,min=1"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

type PlaceOrderRequest struct {
	Items          []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	FullName       string             `json:"full_name" validate:"required,max=120"`
	Email          string             `json:"email" validate:"required,email"`
	Phone          string             `json:"phone" validate:"required,min=8,max=20"`
	Address        string             `json:"address" validate:"required,max=255"`
	City           string             `json:"city" validate:"required,max=80"`
	PaymentMethod  string             `json:"payment_method" validate:"required,payment_method"`
	PointsToRedeem int64              `json:"points_to_redeem" validate:"min=0"`
}

type QuoteRedemptionRequest struct {
	CartTotal      float64 `json:"cart_total" validate:"required,gt=0"`
	PointsToRedeem int64   `json:"points_to_redeem" validate:"min=0"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,order_status"`
}

type AdjustPointsRequest struct {
	Direction string `json:"direction" validate:"required,adjust_direction"`
	Amount    int64  `json:"amount" validate:"required,min=1"`
	Reason    string `json:"reason" validate:"max=255"`
}

type ProductRequest struct {
	Name        string  `json:"name" validate:"required,max=120"`
	Description string  `json:"description" validate:"max=2000"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Image       string  `json:"image" validate:"max=500"`
	Category    string  `json:"category" validate:"required,max=80"`
	Stock       int     `json:"stock" validate:"min=0"`
}

type UpdateRewardsConfigRequest struct {
	PointsPerUnit         float64 `json:"points_per_unit" validate:"required,gt=0"`
	RedemptionRate        float64 `json:"redemption_rate" validate:"required,gt=0"`
	MinRedemptionPoints   int64   `json:"min_redemption_points" validate:"min=0"`
	MaxDiscountPercentage float64 `json:"max_discount_percentage" validate:"required,gt=0,lte=100"`
	Enabled               *bool   `json:"enabled" validate:"required"`
}
