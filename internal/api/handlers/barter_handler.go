package handlers

import (
	"errors"

	"techsell-web/domain"
	"techsell-web/internal/api/presenters"
	"techsell-web/internal/utils"
	"techsell-web/internal/utils/imaging"
	"techsell-web/pkg/auth"
	"techsell-web/pkg/barter"
	"techsell-web/pkg/gateway"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BarterHandler interface {
		GetBarterItems(c *fiber.Ctx) error
		ListItem(c *fiber.Ctx) error
		DelistItem(c *fiber.Ctx) error
		ValidateField(c *fiber.Ctx) error
	}

	barterHandler struct {
		barterService barter.BarterService
		authService   auth.AuthService
		validator     *validator.Validate
	}
)

func NewBarterHandler(barterService barter.BarterService, authService auth.AuthService, validator *validator.Validate) BarterHandler {
	return &barterHandler{
		barterService: barterService,
		authService:   authService,
		validator:     validator,
	}
}

func (h *barterHandler) GetBarterItems(c *fiber.Ctx) error {
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	items, err := h.barterService.FetchBarterItems(c.Context(), session.Credentials)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBarterItems, err)
	}
	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetBarterItems)
}

func (h *barterHandler) ListItem(c *fiber.Ctx) error {
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	req := new(domain.BarterListRequest)
	req.ItemName = c.FormValue("itemName")
	req.Description = c.FormValue("description")
	req.WantedItemDescription = c.FormValue("wantedItemDescription")
	req.Phone = c.FormValue("phone")
	req.Image, _ = c.FormFile("image")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, h.submitErrorMessage(*req), err)
	}

	item, err := h.barterService.ListItem(c.Context(), session.Credentials, *req)
	if err != nil {
		if errors.Is(err, imaging.ErrImageDecode) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessImage, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, gateway.MessageOf(err, domain.MessageFailedListItem), err)
	}
	return presenters.SuccessResponse(c, item, fiber.StatusCreated, domain.MessageSuccessListItem)
}

func (h *barterHandler) DelistItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	if err := h.barterService.DelistItem(c.Context(), session.Credentials, itemID, userID); err != nil {
		if errors.Is(err, domain.ErrNotItemOwner) {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageNotItemOwner, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDelistItem, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDelistItem)
}

// ValidateField checks a single field while the user is typing, mirroring the
// inline errors of the upload form.
func (h *barterHandler) ValidateField(c *fiber.Ctx) error {
	req := new(domain.ValidateFieldRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	result := domain.ValidateFieldResult{Valid: true}
	switch req.Name {
	case "wantedItemDescription":
		if !utils.WantedItemAllowed(req.Value) {
			result = domain.ValidateFieldResult{Valid: false, Message: domain.MessageWantedItemTooLong}
		}
	case "phone":
		if !utils.PhoneInputAllowed(req.Value) {
			result = domain.ValidateFieldResult{Valid: false, Message: domain.MessagePhoneInvalid}
		}
	}
	return presenters.SuccessResponse(c, result, fiber.StatusOK, domain.MessageSuccessValidateField)
}

// submitErrorMessage picks the inline error for a rejected submission: the
// specific field messages win over the generic required-fields one.
func (h *barterHandler) submitErrorMessage(req domain.BarterListRequest) string {
	if req.WantedItemDescription != "" && !utils.WantedItemAllowed(req.WantedItemDescription) {
		return domain.MessageWantedItemTooLong
	}
	if req.Phone != "" && !utils.PhoneSubmitAllowed(req.Phone) {
		return domain.MessagePhoneInvalid
	}
	return domain.MessageFailedMissingFields
}
