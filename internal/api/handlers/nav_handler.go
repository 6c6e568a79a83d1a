package handlers

import (
	"techsell-web/domain"
	"techsell-web/internal/api/presenters"
	"techsell-web/internal/navstate"
	"techsell-web/pkg/auth"

	"github.com/gofiber/fiber/v2"
)

type (
	// NavHandler drives the navigation shell: the role-gated admin hub action
	// and the per-session dropdown/mobile-menu state.
	NavHandler interface {
		AdminHub(c *fiber.Ctx) error
		GetNav(c *fiber.Ctx) error
		ToggleDropdown(c *fiber.Ctx) error
		ToggleMobileMenu(c *fiber.Ctx) error
		CloseMenus(c *fiber.Ctx) error
	}

	navHandler struct {
		authService auth.AuthService
	}

	toggleDropdownRequest struct {
		Menu string `json:"menu" validate:"required"`
	}
)

func NewNavHandler(authService auth.AuthService) NavHandler {
	return &navHandler{authService: authService}
}

// AdminHub navigates to the admin dashboard only when the session carries the
// admin role; otherwise it surfaces a denial notice and stays put.
func (h *navHandler) AdminHub(c *fiber.Ctx) error {
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	if !session.User.HasRole(domain.RoleAdmin) {
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageAccessDeniedAdmin, nil)
	}
	return c.Redirect("/admin-dashboard", fiber.StatusFound)
}

func (h *navHandler) GetNav(c *fiber.Ctx) error {
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}
	return presenters.SuccessResponse(c, session.Nav.Snapshot(), fiber.StatusOK, "navigation state")
}

func (h *navHandler) ToggleDropdown(c *fiber.Ctx) error {
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	req := new(toggleDropdownRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if req.Menu != navstate.DropdownCategories && req.Menu != navstate.DropdownProfile {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, nil)
	}

	session.Nav.ToggleDropdown(req.Menu)
	return presenters.SuccessResponse(c, session.Nav.Snapshot(), fiber.StatusOK, "navigation state")
}

func (h *navHandler) ToggleMobileMenu(c *fiber.Ctx) error {
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	session.Nav.ToggleMobileMenu()
	return presenters.SuccessResponse(c, session.Nav.Snapshot(), fiber.StatusOK, "navigation state")
}

func (h *navHandler) CloseMenus(c *fiber.Ctx) error {
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	session.Nav.ClickOutside()
	return presenters.SuccessResponse(c, session.Nav.Snapshot(), fiber.StatusOK, "navigation state")
}
