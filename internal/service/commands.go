package service

import "github.com/Amrsono/The-Shop/internal/model"

type OrderItemCommand struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type PlaceOrderCommand struct {
	UserID         *string
	Items          []OrderItemCommand
	FullName       string
	Email          string
	Phone          string
	Address        string
	City           string
	PaymentMethod  string
	PointsToRedeem int64
}

// PlaceOrderResult separates the two phases of checkout: the order itself and
// the best-effort loyalty deduction. A committed order with a failed
// deduction is a success with LoyaltyApplied=false.
type PlaceOrderResult struct {
	Order          model.Order       `json:"order"`
	Items          []model.OrderItem `json:"items"`
	PointsRedeemed int64             `json:"points_redeemed"`
	Discount       float64           `json:"discount"`
	LoyaltyApplied bool              `json:"loyalty_applied"`
	LoyaltyError   string            `json:"loyalty_error,omitempty"`
}

type UpdateOrderStatusCommand struct {
	OrderID string
	Status  model.OrderStatus
}

type QuoteRedemptionCommand struct {
	UserID         *string
	CartTotal      float64
	PointsToRedeem int64
}

// RedemptionQuote is the server's answer to the checkout redemption widget:
// whether the shopper may redeem at all, how much at most, and the priced
// outcome of the candidate amount.
type RedemptionQuote struct {
	Eligible            bool    `json:"eligible"`
	AvailablePoints     int64   `json:"available_points"`
	MinRedemptionPoints int64   `json:"min_redemption_points"`
	MaxRedeemablePoints int64   `json:"max_redeemable_points"`
	PointsToRedeem      int64   `json:"points_to_redeem"`
	Discount            float64 `json:"discount"`
	FinalTotal          float64 `json:"final_total"`
}

type AdjustDirection string

const (
	AdjustDirectionAdd    AdjustDirection = "add"
	AdjustDirectionDeduct AdjustDirection = "deduct"
)

type AdjustPointsCommand struct {
	UserID    string
	Direction AdjustDirection
	Amount    int64
	Reason    string
}

type AdjustPointsResult struct {
	Transaction model.LoyaltyTransaction `json:"transaction"`
	NewBalance  int64                    `json:"new_balance"`
}

type AwardResult struct {
	Granted        bool  `json:"granted"`
	AlreadyAwarded bool  `json:"already_awarded"`
	Points         int64 `json:"points"`
}

type UpdateRewardsConfigCommand struct {
	PointsPerUnit         float64
	RedemptionRate        float64
	MinRedemptionPoints   int64
	MaxDiscountPercentage float64
	Enabled               bool
}

// AwardOrderMessage is the queue payload for the award reconciliation
// pipeline.
type AwardOrderMessage struct {
	OrderID string `json:"order_id"`
}
