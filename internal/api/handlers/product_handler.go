package handlers

import (
	"errors"
	"strconv"

	"techsell-web/domain"
	"techsell-web/internal/api/presenters"
	"techsell-web/internal/utils/imaging"
	"techsell-web/pkg/auth"
	"techsell-web/pkg/gateway"
	"techsell-web/pkg/product"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProductHandler interface {
		GetProducts(c *fiber.Ctx) error
		GetFeatured(c *fiber.Ctx) error
		GetByCategory(c *fiber.Ctx) error
		Search(c *fiber.Ctx) error
		ListProduct(c *fiber.Ctx) error
	}

	productHandler struct {
		productService product.ProductService
		authService    auth.AuthService
		validator      *validator.Validate
	}
)

func NewProductHandler(productService product.ProductService, authService auth.AuthService, validator *validator.Validate) ProductHandler {
	return &productHandler{
		productService: productService,
		authService:    authService,
		validator:      validator,
	}
}

func (h *productHandler) GetProducts(c *fiber.Ctx) error {
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	products, err := h.productService.FetchProducts(c.Context(), session.Credentials)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProducts, err)
	}
	return presenters.SuccessResponse(c, products, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) GetFeatured(c *fiber.Ctx) error {
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	products, err := h.productService.FetchFeatured(c.Context(), session.Credentials)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProducts, err)
	}
	return presenters.SuccessResponse(c, products, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) GetByCategory(c *fiber.Ctx) error {
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	category := c.Params("categoryName")
	products, err := h.productService.FetchByCategory(c.Context(), session.Credentials, category)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProducts, err)
	}
	return presenters.SuccessResponse(c, products, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

// Search is the one route the shell exposes without a session guard.
func (h *productHandler) Search(c *fiber.Ctx) error {
	keyword := c.Query("search")

	var creds *gateway.Credentials
	if session, err := sessionOf(c, h.authService); err == nil {
		creds = session.Credentials
	}

	results, err := h.productService.SearchProducts(c.Context(), creds, keyword)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearch, err)
	}
	return presenters.SuccessResponse(c, results, fiber.StatusOK, domain.MessageSuccessSearch)
}

func (h *productHandler) ListProduct(c *fiber.Ctx) error {
	session, err := sessionOf(c, h.authService)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}

	req := new(domain.ListProductRequest)
	req.Name = c.FormValue("name")
	req.Description = c.FormValue("description")
	req.Category = c.FormValue("category")
	req.Price, _ = strconv.ParseFloat(c.FormValue("price"), 64)
	req.Image, _ = c.FormFile("image")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMissingFields, err)
	}

	created, err := h.productService.ListProduct(c.Context(), session.Credentials, *req)
	if err != nil {
		if errors.Is(err, imaging.ErrImageDecode) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessImage, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, gateway.MessageOf(err, domain.MessageFailedListProduct), err)
	}
	return presenters.SuccessResponse(c, created, fiber.StatusCreated, domain.MessageSuccessListProduct)
}
