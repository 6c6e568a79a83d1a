package handlers

import (
	"techsell-web/domain"
	"techsell-web/internal/api/presenters"
	"techsell-web/pkg/admin"
	"techsell-web/pkg/auth"
	"techsell-web/pkg/gateway"

	"github.com/gofiber/fiber/v2"
)

type (
	AdminHandler interface {
		PendingProducts(c *fiber.Ctx) error
		ApproveProduct(c *fiber.Ctx) error
		BarterItems(c *fiber.Ctx) error
		DelistBarterItem(c *fiber.Ctx) error
		PendingSellers(c *fiber.Ctx) error
		ApproveSeller(c *fiber.Ctx) error
		PendingPersonnel(c *fiber.Ctx) error
		ApprovedPersonnel(c *fiber.Ctx) error
		ApproveDeliveryPersonnel(c *fiber.Ctx) error
	}

	adminHandler struct {
		adminService admin.AdminService
		authService  auth.AuthService
	}
)

func NewAdminHandler(adminService admin.AdminService, authService auth.AuthService) AdminHandler {
	return &adminHandler{
		adminService: adminService,
		authService:  authService,
	}
}

func (h *adminHandler) PendingProducts(c *fiber.Ctx) error {
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	products, err := h.adminService.FetchPendingProducts(c.Context(), session.Credentials)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPending, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"products": products}, fiber.StatusOK, domain.MessageSuccessGetPending)
}

func (h *adminHandler) ApproveProduct(c *fiber.Ctx) error {
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	if err := h.adminService.ApproveProduct(c.Context(), session.Credentials, c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, gateway.MessageOf(err, domain.MessageFailedApproveProduct), err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessApproveProduct)
}

func (h *adminHandler) BarterItems(c *fiber.Ctx) error {
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	items, err := h.adminService.FetchBarterItems(c.Context(), session.Credentials)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPending, err)
	}
	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetPending)
}

func (h *adminHandler) DelistBarterItem(c *fiber.Ctx) error {
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	if err := h.adminService.DelistBarterItem(c.Context(), session.Credentials, c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, gateway.MessageOf(err, domain.MessageFailedAdminDelist), err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAdminDelist)
}

func (h *adminHandler) PendingSellers(c *fiber.Ctx) error {
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	sellers, err := h.adminService.FetchPendingSellers(c.Context(), session.Credentials)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPending, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"sellers": sellers}, fiber.StatusOK, domain.MessageSuccessGetPending)
}

func (h *adminHandler) ApproveSeller(c *fiber.Ctx) error {
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	if err := h.adminService.ApproveSeller(c.Context(), session.Credentials, c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, gateway.MessageOf(err, domain.MessageFailedApproveSeller), err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessApproveSeller)
}

func (h *adminHandler) PendingPersonnel(c *fiber.Ctx) error {
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	personnel, err := h.adminService.FetchPendingPersonnel(c.Context(), session.Credentials)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPending, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"deliveryPersonnel": personnel}, fiber.StatusOK, domain.MessageSuccessGetPending)
}

func (h *adminHandler) ApprovedPersonnel(c *fiber.Ctx) error {
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	personnel, err := h.adminService.FetchApprovedPersonnel(c.Context(), session.Credentials)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPending, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"deliveryPersonnel": personnel}, fiber.StatusOK, domain.MessageSuccessGetPending)
}

func (h *adminHandler) ApproveDeliveryPersonnel(c *fiber.Ctx) error {
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	approved, err := h.adminService.ApproveDeliveryPersonnel(c.Context(), session.Credentials, c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, gateway.MessageOf(err, domain.MessageFailedApproveDelivery), err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"deliveryPersonnel": approved}, fiber.StatusOK, domain.MessageSuccessApproveDelivery)
}
