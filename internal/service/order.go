package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Amrsono/The-Shop/internal/constants"
	"github.com/Amrsono/The-Shop/internal/metrics"
	"github.com/Amrsono/The-Shop/internal/model"
	"github.com/Amrsono/The-Shop/internal/repository"
	"github.com/Amrsono/The-Shop/internal/rewards"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	// PlaceOrder persists the order and its item snapshots, then runs the
	// best-effort redemption deduction. The returned result reports the two
	// phases independently: a failed deduction never fails the order.
	PlaceOrder(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error)
	GetOrder(ctx context.Context, orderID string) (model.Order, []model.OrderItem, error)
	ListOrders(limit, offset int) ([]model.Order, error)
	ListUserOrders(userID string, limit, offset int) ([]model.Order, error)
	// UpdateStatus enforces the order lifecycle and, on the transition into
	// Delivered, attempts the point award. An award failure is logged and
	// left to the reconciliation worker; it never reverts the status change.
	UpdateStatus(ctx context.Context, cmd UpdateOrderStatusCommand) (model.Order, error)
}

type orderService struct {
	txManager  repository.TxManager
	orders     repository.OrderRepository
	products   repository.ProductRepository
	profiles   repository.ProfileRepository
	configRepo repository.RewardsConfigRepository
	loyalty    LoyaltyService
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

func NewOrderService(txManager repository.TxManager, orders repository.OrderRepository,
	products repository.ProductRepository, profiles repository.ProfileRepository,
	configRepo repository.RewardsConfigRepository, loyalty LoyaltyService,
	logger *zap.Logger, metrics *metrics.Metrics) OrderService {
	return &orderService{txManager: txManager, orders: orders, products: products,
		profiles: profiles, configRepo: configRepo, loyalty: loyalty, logger: logger, metrics: metrics}
}

func (s *orderService) PlaceOrder(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	if len(cmd.Items) == 0 {
		return PlaceOrderResult{}, NewServiceError(constants.ErrCodeEmptyOrder, errors.New("order has no items"))
	}

	orderID := uuid.NewString()

	items, subtotal, err := s.snapshotItems(orderID, cmd.Items)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	discount := 0.0
	if cmd.PointsToRedeem > 0 {
		discount, err = s.priceRedemption(ctx, cmd, subtotal)
		if err != nil {
			return PlaceOrderResult{}, err
		}
	}

	order := model.Order{
		ID:              orderID,
		UserID:          cmd.UserID,
		TotalAmount:     rewards.FinalTotal(subtotal, discount),
		Status:          model.OrderStatusReceived,
		PaymentMethod:   cmd.PaymentMethod,
		FullName:        cmd.FullName,
		Email:           cmd.Email,
		Phone:           cmd.Phone,
		ShippingAddress: fmt.Sprintf("%s, %s", cmd.Address, cmd.City),
		City:            cmd.City,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.orders.Create(ctx, &order); err != nil {
			return err
		}
		return s.orders.CreateItems(ctx, items)
	})

	if err != nil {
		s.logger.Error("Failed to place order",
			zap.String("orderID", orderID),
			zap.Error(err))
		return PlaceOrderResult{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	result := PlaceOrderResult{
		Order:          order,
		Items:          items,
		PointsRedeemed: cmd.PointsToRedeem,
		Discount:       discount,
	}

	// The order is committed; the deduction is best-effort from here on.
	if cmd.PointsToRedeem > 0 && cmd.UserID != nil {
		err := s.loyalty.RedeemForOrder(ctx, *cmd.UserID, orderID, cmd.PointsToRedeem, discount)
		if err != nil {
			s.logger.Error("Order placed but point deduction failed",
				zap.String("orderID", orderID),
				zap.String("userID", *cmd.UserID),
				zap.Int64("points", cmd.PointsToRedeem),
				zap.Error(err))
			s.metrics.RecordLoyaltySideEffect("redeem", "error")

			var serviceErr Error
			if errors.As(err, &serviceErr) {
				result.LoyaltyError = serviceErr.Code
			} else {
				result.LoyaltyError = constants.ErrCodeOperationFailed
			}
		} else {
			result.LoyaltyApplied = true
			s.metrics.RecordLoyaltySideEffect("redeem", "success")
		}
	}

	checkout := "guest"
	if cmd.UserID != nil {
		checkout = "user"
	}
	s.metrics.RecordOrderPlaced(checkout, result.LoyaltyApplied)

	s.logger.Info("Order placed",
		zap.String("orderID", orderID),
		zap.Float64("totalAmount", order.TotalAmount),
		zap.Int64("pointsRedeemed", cmd.PointsToRedeem),
		zap.Bool("loyaltyApplied", result.LoyaltyApplied))

	return result, nil
}

// snapshotItems prices the cart from the catalog and freezes name/image/price
// per line item.
func (s *orderService) snapshotItems(orderID string, items []OrderItemCommand) ([]model.OrderItem, float64, error) {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.products.GetByIDs(ids)
	if err != nil {
		return nil, 0, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	byID := make(map[int64]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	snapshots := make([]model.OrderItem, 0, len(items))
	subtotal := 0.0
	for _, item := range items {
		p, ok := byID[item.ProductID]
		if !ok {
			return nil, 0, NewServiceError(constants.ErrCodeProductNotFound,
				fmt.Errorf("product %d not found", item.ProductID))
		}
		if item.Quantity <= 0 {
			return nil, 0, NewServiceError(constants.ErrCodeEmptyOrder,
				fmt.Errorf("invalid quantity for product %d", item.ProductID))
		}

		snapshots = append(snapshots, model.OrderItem{
			OrderID:   orderID,
			ProductID: p.ID,
			Name:      p.Name,
			Image:     p.Image,
			Price:     p.Price,
			Quantity:  item.Quantity,
		})
		subtotal += p.Price * float64(item.Quantity)
	}

	return snapshots, subtotal, nil
}

// priceRedemption re-validates the applied points against a fresh config and
// balance before the order is priced. A candidate that fails validation
// aborts checkout; the final total is never computed from invalid points.
func (s *orderService) priceRedemption(ctx context.Context, cmd PlaceOrderCommand, subtotal float64) (float64, error) {
	if cmd.UserID == nil {
		return 0, NewServiceError(constants.ErrCodeGuestRedemption,
			errors.New("guest checkout cannot redeem points"))
	}

	cfg, err := s.configRepo.Get(ctx)
	if err != nil {
		return 0, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	profile, err := s.profiles.FindByID(*cmd.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return 0, NewServiceError(constants.ErrCodeUserNotFound, err)
		}
		return 0, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if err := rewards.ValidateRedemption(cmd.PointsToRedeem, profile.LoyaltyPoints, subtotal, cfg); err != nil {
		s.metrics.RecordRedemptionRejected(err.Error())
		return 0, redemptionError(err)
	}

	return rewards.DiscountFromPoints(cmd.PointsToRedeem, cfg.RedemptionRate), nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID string) (model.Order, []model.OrderItem, error) {
	order, err := s.orders.GetByID(orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return model.Order{}, nil, NewServiceError(constants.ErrCodeOrderNotFound, err)
		}
		return model.Order{}, nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	items, err := s.orders.GetItems(orderID)
	if err != nil {
		return model.Order{}, nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	return order, items, nil
}

func (s *orderService) ListOrders(limit, offset int) ([]model.Order, error) {
	orders, err := s.orders.List(limit, offset)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return orders, nil
}

func (s *orderService) ListUserOrders(userID string, limit, offset int) ([]model.Order, error) {
	orders, err := s.orders.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, NewServiceError(constants.ErrCodeOperationFailed, err)
	}
	return orders, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, cmd UpdateOrderStatusCommand) (model.Order, error) {
	order, err := s.orders.GetByID(cmd.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return model.Order{}, NewServiceError(constants.ErrCodeOrderNotFound, err)
		}
		return model.Order{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if order.Status == cmd.Status {
		return order, nil
	}

	if !model.CanTransition(order.Status, cmd.Status) {
		return model.Order{}, NewServiceError(constants.ErrCodeInvalidStatusTransition,
			fmt.Errorf("cannot transition from %q to %q", order.Status, cmd.Status))
	}

	if err := s.orders.UpdateStatus(ctx, cmd.OrderID, cmd.Status); err != nil {
		s.logger.Error("Failed to update order status",
			zap.String("orderID", cmd.OrderID),
			zap.String("status", string(cmd.Status)),
			zap.Error(err))
		return model.Order{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	s.metrics.RecordStatusChange(string(order.Status), string(cmd.Status))

	if cmd.Status == model.OrderStatusDelivered {
		// Award failures are swallowed here; the reconciliation worker picks
		// up delivered orders that still lack an earned ledger row.
		if _, err := s.loyalty.AwardForOrder(ctx, cmd.OrderID); err != nil {
			s.logger.Error("Status updated but point award failed",
				zap.String("orderID", cmd.OrderID),
				zap.Error(err))
			s.metrics.RecordLoyaltySideEffect("award", "error")
		} else {
			s.metrics.RecordLoyaltySideEffect("award", "success")
		}
	}

	order.Status = cmd.Status
	order.UpdatedAt = time.Now()

	s.logger.Info("Order status updated",
		zap.String("orderID", cmd.OrderID),
		zap.String("status", string(cmd.Status)))

	return order, nil
}
