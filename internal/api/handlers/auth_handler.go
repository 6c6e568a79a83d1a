package handlers

import (
	"time"

	"techsell-web/domain"
	"techsell-web/internal/api/presenters"
	"techsell-web/pkg/auth"
	"techsell-web/pkg/gateway"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		Signup(c *fiber.Ctx) error
		VerifyOtp(c *fiber.Ctx) error
		ResendOtp(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		Me(c *fiber.Ctx) error
		BecomeSeller(c *fiber.Ctx) error
		BecomeDelivery(c *fiber.Ctx) error
	}

	authHandler struct {
		authService auth.AuthService
		validator   *validator.Validate
	}
)

func NewAuthHandler(authService auth.AuthService, validator *validator.Validate) AuthHandler {
	return &authHandler{
		authService: authService,
		validator:   validator,
	}
}

func (h *authHandler) Signup(c *fiber.Ctx) error {
	req := new(domain.SignupRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSignup, err)
	}

	pending, err := h.authService.Signup(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, gateway.MessageOf(err, domain.MessageFailedSignup), err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     domain.SignupCookieName,
		Value:    pending.ID,
		Path:     "/",
		HTTPOnly: true,
	})
	return c.Redirect("/otp", fiber.StatusSeeOther)
}

func (h *authHandler) VerifyOtp(c *fiber.Ctx) error {
	signupID := c.Locals("signup_id").(string)
	req := new(domain.VerifyOtpRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedVerifyOtp, err)
	}

	_, token, err := h.authService.VerifyOtp(c.Context(), signupID, req.EnteredOtp)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, gateway.MessageOf(err, domain.MessageFailedVerifyOtp), err)
	}

	h.setSessionCookie(c, token)
	h.expireCookie(c, domain.SignupCookieName)
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *authHandler) ResendOtp(c *fiber.Ctx) error {
	signupID := c.Locals("signup_id").(string)

	if err := h.authService.ResendOtp(c.Context(), signupID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, gateway.MessageOf(err, domain.MessageFailedResendOtp), err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessResendOtp)
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	_, token, err := h.authService.Login(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, gateway.MessageOf(err, domain.MessageFailedLogin), err)
	}

	h.setSessionCookie(c, token)
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *authHandler) Logout(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.authService.Logout(c.Context(), userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, gateway.MessageOf(err, domain.MessageFailedLogout), err)
	}

	h.expireCookie(c, domain.SessionCookieName)
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// Me reports the refreshed identity. A failed fetch is "no session", not an
// error: the shell renders the anonymous state.
func (h *authHandler) Me(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	user, err := h.authService.CheckAuth(c.Context(), userID)
	if err != nil {
		return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageNoActiveSession)
	}
	return presenters.SuccessResponse(c, user, fiber.StatusOK, domain.MessageSuccessGetMe)
}

func (h *authHandler) BecomeSeller(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.BecomeSellerRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBecomeSeller, err)
	}

	message, err := h.authService.BecomeSeller(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, gateway.MessageOf(err, domain.MessageFailedBecomeSeller), err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, message)
}

func (h *authHandler) BecomeDelivery(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.BecomeDeliveryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBecomeDelivery, err)
	}

	message, err := h.authService.BecomeDelivery(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, gateway.MessageOf(err, domain.MessageFailedBecomeDelivery), err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, message)
}

func (h *authHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     domain.SessionCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Now().Add(2 * time.Hour),
	})
}

func (h *authHandler) expireCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
	})
}
