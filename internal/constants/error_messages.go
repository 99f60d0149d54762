package constants

const MessageErrorFormat = "The '%s' format is invalid"

const (
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeInvalidRequestBody = "INVALID_REQUEST_BODY"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"

	ErrCodeUserNotFound    = "USER_NOT_FOUND"
	ErrCodeOrderNotFound   = "ORDER_NOT_FOUND"
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodeEmptyOrder      = "EMPTY_ORDER"

	ErrCodeRewardsDisabled    = "REWARDS_DISABLED"
	ErrCodeBelowMinRedemption = "BELOW_MIN_REDEMPTION"
	ErrCodeInsufficientPoints = "INSUFFICIENT_POINTS"
	ErrCodeExceedsMaxDiscount = "EXCEEDS_MAX_DISCOUNT"
	ErrCodeGuestRedemption    = "GUEST_REDEMPTION"
	ErrCodeInvalidAdjustment  = "INVALID_ADJUSTMENT"

	ErrCodeInvalidStatusTransition = "INVALID_STATUS_TRANSITION"

	ErrCodeCheckoutTimeout = "CHECKOUT_TIMEOUT"
	ErrCodeOperationFailed = "OPERATION_FAILED"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

var errorMessages = map[string]string{
	ErrCodeValidationFailed:   "request validation failed",
	ErrCodeInvalidRequestBody: "failed to parse request body",
	ErrCodeUnauthorized:       "authentication required",
	ErrCodeForbidden:          "insufficient permissions",

	ErrCodeUserNotFound:    "user not found",
	ErrCodeOrderNotFound:   "order not found",
	ErrCodeProductNotFound: "product not found",
	ErrCodeEmptyOrder:      "order has no items",

	ErrCodeRewardsDisabled:    "rewards system is currently disabled",
	ErrCodeBelowMinRedemption: "points amount is below the minimum redemption",
	ErrCodeInsufficientPoints: "insufficient points",
	ErrCodeExceedsMaxDiscount: "discount exceeds the maximum allowed for this order",
	ErrCodeGuestRedemption:    "guest checkout cannot redeem points",
	ErrCodeInvalidAdjustment:  "adjustment amount must be positive",

	ErrCodeInvalidStatusTransition: "order status transition is not allowed",

	ErrCodeCheckoutTimeout: "order placement timed out",
	ErrCodeOperationFailed: "operation failed",
	ErrCodeInternalError:   "Internal server error",
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

const ErrMsgInternalError = "Internal server error"

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeValidationFailed, ErrCodeInvalidRequestBody:
		return 400
	case ErrCodeUnauthorized:
		return 401
	case ErrCodeForbidden:
		return 403
	case ErrCodeUserNotFound, ErrCodeOrderNotFound, ErrCodeProductNotFound:
		return 404
	case ErrCodeInvalidStatusTransition:
		return 409
	case ErrCodeRewardsDisabled, ErrCodeBelowMinRedemption, ErrCodeInsufficientPoints,
		ErrCodeExceedsMaxDiscount, ErrCodeGuestRedemption, ErrCodeInvalidAdjustment, ErrCodeEmptyOrder:
		return 422
	case ErrCodeCheckoutTimeout:
		return 504
	default:
		return 500
	}
}
