package handlers

import (
	"techsell-web/domain"
	"techsell-web/internal/api/presenters"
	"techsell-web/pkg/auth"
	"techsell-web/pkg/cart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CartHandler interface {
		GetCart(c *fiber.Ctx) error
		AddToCart(c *fiber.Ctx) error
		UpdateQuantity(c *fiber.Ctx) error
		ClearItem(c *fiber.Ctx) error
		DeleteCart(c *fiber.Ctx) error
	}

	cartHandler struct {
		cartService cart.CartService
		authService auth.AuthService
		validator   *validator.Validate
	}
)

func NewCartHandler(cartService cart.CartService, authService auth.AuthService, validator *validator.Validate) CartHandler {
	return &cartHandler{
		cartService: cartService,
		authService: authService,
		validator:   validator,
	}
}

// GetCart fetches the authoritative cart and returns it together with the
// freshly derived totals.
func (h *cartHandler) GetCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	items, err := h.cartService.FetchCart(c.Context(), session.Credentials, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCart, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items":  items,
		"totals": h.cartService.Totals(userID),
	}, fiber.StatusOK, domain.MessageSuccessGetCart)
}

func (h *cartHandler) AddToCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	req := new(domain.AddToCartRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToCart, err)
	}

	item, err := h.cartService.AddToCart(c.Context(), session.Credentials, userID, req.ProductID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToCart, err)
	}
	return presenters.SuccessResponse(c, item, fiber.StatusCreated, domain.MessageSuccessAddToCart)
}

func (h *cartHandler) UpdateQuantity(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	cartItemID := c.Params("id")
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	req := new(domain.UpdateQuantityRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateQuantity, err)
	}

	if err := h.cartService.UpdateQuantity(c.Context(), session.Credentials, userID, cartItemID, req.Quantity); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateQuantity, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"totals": h.cartService.Totals(userID),
	}, fiber.StatusOK, domain.MessageSuccessUpdateQuantity)
}

func (h *cartHandler) ClearItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	cartItemID := c.Params("id")
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	if err := h.cartService.ClearItem(c.Context(), session.Credentials, userID, cartItemID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClearItem, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"totals": h.cartService.Totals(userID),
	}, fiber.StatusOK, domain.MessageSuccessClearItem)
}

func (h *cartHandler) DeleteCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	if err := h.cartService.DeleteCart(c.Context(), session.Credentials, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteCart, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCart)
}
