package v1

import (
	"strconv"

	"github.com/Amrsono/The-Shop/internal/api/contract"
	"github.com/Amrsono/The-Shop/internal/constants"
	"github.com/Amrsono/The-Shop/internal/model"
	"github.com/Amrsono/The-Shop/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (h *Handler) AdminListOrders(c *fiber.Ctx) error {
	limit, offset := pagination(c)

	orders, err := h.orderService.ListOrders(limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Code: "success", Result: orders})
}

func (h *Handler) AdminGetOrder(c *fiber.Ctx) error {
	order, items, err := h.orderService.GetOrder(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Code: "success", Result: OrderDetailResponse{Order: order, Items: items}})
}

func (h *Handler) AdminUpdateOrderStatus(c *fiber.Ctx) error {
	var handlerRequest UpdateOrderStatusRequest
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	cmd := service.UpdateOrderStatusCommand{
		OrderID: c.Params("id"),
		Status:  model.OrderStatus(handlerRequest.Status),
	}

	order, err := h.orderService.UpdateStatus(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Code: "success", Result: order})
}

func (h *Handler) AdminCreateProduct(c *fiber.Ctx) error {
	var handlerRequest ProductRequest
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	product := model.Product{
		Name:        handlerRequest.Name,
		Description: handlerRequest.Description,
		Price:       handlerRequest.Price,
		Image:       handlerRequest.Image,
		Category:    handlerRequest.Category,
		Stock:       handlerRequest.Stock,
	}

	if err := h.productService.Create(c.UserContext(), &product); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(contract.Response{Code: "success", Result: product})
}

func (h *Handler) AdminUpdateProduct(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return service.NewServiceError(constants.ErrCodeProductNotFound, err)
	}

	var handlerRequest ProductRequest
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	product := model.Product{
		ID:          productID,
		Name:        handlerRequest.Name,
		Description: handlerRequest.Description,
		Price:       handlerRequest.Price,
		Image:       handlerRequest.Image,
		Category:    handlerRequest.Category,
		Stock:       handlerRequest.Stock,
	}

	if err := h.productService.Update(c.UserContext(), &product); err != nil {
		return err
	}

	return c.JSON(contract.Response{Code: "success", Result: product})
}

func (h *Handler) AdminDeleteProduct(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return service.NewServiceError(constants.ErrCodeProductNotFound, err)
	}

	if err := h.productService.Delete(c.UserContext(), productID); err != nil {
		return err
	}

	return c.JSON(contract.Response{Code: "success", Message: "product deleted"})
}

func (h *Handler) AdminListUsers(c *fiber.Ctx) error {
	limit, offset := pagination(c)

	profiles, total, err := h.profileService.List(limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Code: "success", Result: contract.Paginated{
		Items:  profiles,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}})
}

func (h *Handler) AdminAdjustPoints(c *fiber.Ctx) error {
	var handlerRequest AdjustPointsRequest
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	cmd := service.AdjustPointsCommand{
		UserID:    c.Params("id"),
		Direction: service.AdjustDirection(handlerRequest.Direction),
		Amount:    handlerRequest.Amount,
		Reason:    handlerRequest.Reason,
	}

	result, err := h.loyaltyService.Adjust(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Code: "success", Result: result})
}

func (h *Handler) AdminGetRewardsConfig(c *fiber.Ctx) error {
	cfg, err := h.rewardsService.GetConfig(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Code: "success", Result: cfg})
}

func (h *Handler) AdminUpdateRewardsConfig(c *fiber.Ctx) error {
	var handlerRequest UpdateRewardsConfigRequest
	responseError := h.XValidator.Validator(&handlerRequest, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Error("Error Validator", zap.Any("request", handlerRequest))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	cmd := service.UpdateRewardsConfigCommand{
		PointsPerUnit:         handlerRequest.PointsPerUnit,
		RedemptionRate:        handlerRequest.RedemptionRate,
		MinRedemptionPoints:   handlerRequest.MinRedemptionPoints,
		MaxDiscountPercentage: handlerRequest.MaxDiscountPercentage,
		Enabled:               *handlerRequest.Enabled,
	}

	cfg, err := h.rewardsService.UpdateConfig(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(contract.Response{Code: "success", Result: cfg})
}
