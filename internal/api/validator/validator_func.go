package validator

import (
	"github.com/Amrsono/The-Shop/internal/model"
	"github.com/go-playground/validator/v10"
)

const (
	OrderStatusTag     = "order_status"
	AdjustDirectionTag = "adjust_direction"
	PaymentMethodTag   = "payment_method"
)

var valid = map[string]func(fl validator.FieldLevel) bool{
	OrderStatusTag:     ValidateOrderStatus,
	AdjustDirectionTag: ValidateAdjustDirection,
	PaymentMethodTag:   ValidatePaymentMethod,
}

func ValidateOrderStatus(fl validator.FieldLevel) bool {
	return model.IsValidOrderStatus(fl.Field().String())
}

func ValidateAdjustDirection(fl validator.FieldLevel) bool {
	direction := fl.Field().String()
	return direction == "add" || direction == "deduct"
}

func ValidatePaymentMethod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "cash_on_delivery", "credit_card":
		return true
	}
	return false
}
