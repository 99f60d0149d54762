package v1

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/Amrsono/The-Shop/internal/api/contract"
	"github.com/Amrsono/The-Shop/internal/api/middleware"
	"github.com/Amrsono/The-Shop/internal/api/validator"
	"github.com/Amrsono/The-Shop/internal/constants"
	"github.com/Amrsono/The-Shop/internal/metrics"
	"github.com/Amrsono/The-Shop/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type Handler struct {
	logger          *zap.Logger
	orderService    service.OrderService
	rewardsService  service.RewardsService
	loyaltyService  service.LoyaltyService
	productService  service.ProductService
	profileService  service.ProfileService
	XValidator      validator.IXValidator
	metrics         *metrics.Metrics
	checkoutTimeout time.Duration
}

func NewHandler(logger *zap.Logger, orderService service.OrderService, rewardsService service.RewardsService,
	loyaltyService service.LoyaltyService, productService service.ProductService,
	profileService service.ProfileService, XValidator validator.IXValidator, metrics *metrics.Metrics,
	checkoutTimeout time.Duration) *Handler {
	if checkoutTimeout <= 0 {
		checkoutTimeout = 15 * time.Second
	}
	return &Handler{
		logger:          logger,
		orderService:    orderService,
		rewardsService:  rewardsService,
		loyaltyService:  loyaltyService,
		productService:  productService,
		profileService:  profileService,
		XValidator:      XValidator,
		metrics:         metrics,
		checkoutTimeout: checkoutTimeout,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) ListProducts(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	category := c.Query("category")

	products, err := h.productService.List(category, limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Code: "success", Result: products})
}

func (h *Handler) GetProduct(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return service.NewServiceError(constants.ErrCodeProductNotFound, err)
	}

	product, err := h.productService.Get(productID)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Code: "success", Result: product})
}

func (h *Handler) QuoteRedemption(c *fiber.Ctx) error {
	var handlerRequest QuoteRedemptionRequest
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	cmd := service.QuoteRedemptionCommand{
		UserID:         middleware.UserID(c),
		CartTotal:      handlerRequest.CartTotal,
		PointsToRedeem: handlerRequest.PointsToRedeem,
	}

	quote, err := h.rewardsService.QuoteRedemption(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Code: "success", Result: quote})
}

func (h *Handler) PlaceOrder(c *fiber.Ctx) error {
	start := time.Now()

	var handlerRequest PlaceOrderRequest
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	items := make([]service.OrderItemCommand, 0, len(handlerRequest.Items))
	for _, item := range handlerRequest.Items {
		items = append(items, service.OrderItemCommand{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	cmd := service.PlaceOrderCommand{
		UserID:         middleware.UserID(c),
		Items:          items,
		FullName:       handlerRequest.FullName,
		Email:          handlerRequest.Email,
		Phone:          handlerRequest.Phone,
		Address:        handlerRequest.Address,
		City:           handlerRequest.City,
		PaymentMethod:  handlerRequest.PaymentMethod,
		PointsToRedeem: handlerRequest.PointsToRedeem,
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.checkoutTimeout)
	defer cancel()

	result, err := h.orderService.PlaceOrder(ctx, cmd)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return service.NewServiceError(constants.ErrCodeCheckoutTimeout, err)
		}
		return err
	}

	h.logger.Info("Order placed",
		zap.String("order_id", result.Order.ID),
		zap.Duration("duration", time.Since(start)),
	)

	return c.Status(fiber.StatusCreated).JSON(contract.Response{Code: "success", Result: result})
}

func (h *Handler) MyPoints(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	balance, err := h.loyaltyService.Balance(*userID)
	if err != nil {
		return err
	}

	cfg, err := h.rewardsService.GetConfig(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Code: "success", Result: PointsBalanceResponse{
		UserID:              *userID,
		Balance:             balance,
		MinRedemptionPoints: cfg.MinRedemptionPoints,
		Enabled:             cfg.Enabled,
	}})
}

func (h *Handler) MyPointsHistory(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	limit, offset := pagination(c)

	transactions, total, err := h.loyaltyService.History(*userID, limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Code: "success", Result: contract.Paginated{
		Items:  transactions,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}})
}

func (h *Handler) MyOrders(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	limit, offset := pagination(c)

	orders, err := h.orderService.ListUserOrders(*userID, limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Code: "success", Result: orders})
}

func pagination(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", defaultPageSize)
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}

	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
