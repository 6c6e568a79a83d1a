package handlers

import (
	"techsell-web/domain"
	"techsell-web/internal/api/presenters"
	"techsell-web/pkg/auth"
	"techsell-web/pkg/gateway"
	"techsell-web/pkg/order"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OrderHandler interface {
		PlaceOrder(c *fiber.Ctx) error
		MyOrders(c *fiber.Ctx) error
		ConfirmDelivery(c *fiber.Ctx) error
		PaymentStatus(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService order.OrderService
		authService  auth.AuthService
		validator    *validator.Validate
	}
)

func NewOrderHandler(orderService order.OrderService, authService auth.AuthService, validator *validator.Validate) OrderHandler {
	return &orderHandler{
		orderService: orderService,
		authService:  authService,
		validator:    validator,
	}
}

// PlaceOrder submits the cart and sends the browser to the payment processor.
func (h *orderHandler) PlaceOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	paymentURL, err := h.orderService.PlaceOrder(c.Context(), session.Credentials, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPayment, err)
	}
	return c.Redirect(paymentURL, fiber.StatusSeeOther)
}

func (h *orderHandler) MyOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	// A failed fetch still renders an empty orders list.
	orders, _ := h.orderService.FetchOrders(c.Context(), session.Credentials, userID)
	return presenters.SuccessResponse(c, fiber.Map{
		"orders": orders,
	}, fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *orderHandler) ConfirmDelivery(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	req := new(domain.ConfirmDeliveryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConfirmDelivery, err)
	}

	message, err := h.orderService.ConfirmDelivery(c.Context(), session.Credentials, userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, gateway.MessageOf(err, domain.MessageFailedConfirmDelivery), err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, message)
}

// PaymentStatus renders the payment processor's return page from the query
// parameters alone; there is no confirmation round-trip.
func (h *orderHandler) PaymentStatus(c *fiber.Ctx) error {
	status := c.Query("status")
	reference := c.Query("reference")

	return presenters.SuccessResponse(c, fiber.Map{
		"status":    status,
		"reference": reference,
	}, fiber.StatusOK, domain.PaymentStatusMessage(status))
}
