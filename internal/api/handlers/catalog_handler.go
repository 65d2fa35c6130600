package handlers

import (
	"Fluid-Balance-Backend/domain"
	"Fluid-Balance-Backend/internal/api/presenters"
	"Fluid-Balance-Backend/pkg/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		GetNutritionItems(c *fiber.Ctx) error
		GetProducts(c *fiber.Ctx) error
		AddProduct(c *fiber.Ctx) error
		DeleteProduct(c *fiber.Ctx) error
		GenerateBarcodeLabel(c *fiber.Ctx) error
		GenerateQRLabel(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
		validator      *validator.Validate
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService, validator *validator.Validate) CatalogHandler {
	return &catalogHandler{
		catalogService: catalogService,
		validator:      validator,
	}
}

func (h *catalogHandler) GetNutritionItems(c *fiber.Ctx) error {
	res, err := h.catalogService.GetNutritionItems(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetNutrition, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNutrition)
}

func (h *catalogHandler) GetProducts(c *fiber.Ctx) error {
	res, err := h.catalogService.GetProducts(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *catalogHandler) AddProduct(c *fiber.Ctx) error {
	req := new(domain.AddProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddProduct, err)
	}

	res, err := h.catalogService.AddProduct(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedAddProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddProduct)
}

func (h *catalogHandler) DeleteProduct(c *fiber.Ctx) error {
	req := new(domain.DeleteProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteProduct, err)
	}

	if err := h.catalogService.DeleteProduct(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedDeleteProduct, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteProduct)
}

func (h *catalogHandler) GenerateBarcodeLabel(c *fiber.Ctx) error {
	req := new(domain.BarcodeLabelRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateLabel, err)
	}

	res, err := h.catalogService.GenerateBarcodeLabel(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGenerateLabel, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateLabel)
}

func (h *catalogHandler) GenerateQRLabel(c *fiber.Ctx) error {
	req := new(domain.QRLabelRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateLabel, err)
	}

	res, err := h.catalogService.GenerateQRLabel(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusCode(err), domain.MessageFailedGenerateLabel, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateLabel)
}
