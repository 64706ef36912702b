package handlers

import (
	"recipe-management/domain"
	"recipe-management/internal/api/presenters"
	"recipe-management/pkg/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		CreateIngredient(c *fiber.Ctx) error
		ListIngredients(c *fiber.Ctx) error
		RenameIngredient(c *fiber.Ctx) error
		CreateCategory(c *fiber.Ctx) error
		ListCategories(c *fiber.Ctx) error
		RenameCategory(c *fiber.Ctx) error
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

func (h *catalogHandler) parseItem(c *fiber.Ctx) (*domain.CatalogItemRequest, error) {
	req := new(domain.CatalogItemRequest)
	if err := c.BodyParser(req); err != nil {
		return nil, err
	}
	if err := h.validator.Struct(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (h *catalogHandler) CreateIngredient(c *fiber.Ctx) error {
	req, err := h.parseItem(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	ingredient, err := h.catalogService.CreateIngredient(c.Context(), req.Name)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedCreateIngredient, err)
	}

	return presenters.SuccessResponse(c, domain.CatalogItemResponse{
		ID:   ingredient.ID.String(),
		Name: ingredient.Name,
	}, fiber.StatusCreated, domain.MessageSuccessCreateIngredient)
}

func (h *catalogHandler) ListIngredients(c *fiber.Ctx) error {
	ingredients, err := h.catalogService.ListIngredients(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetIngredients, err)
	}

	return presenters.SuccessResponse(c, presenters.ToIngredientResponses(ingredients), fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

func (h *catalogHandler) RenameIngredient(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParseID, err)
	}
	req, err := h.parseItem(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	ingredient, err := h.catalogService.RenameIngredient(c.Context(), id, req.Name)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedRenameIngredient, err)
	}

	return presenters.SuccessResponse(c, domain.CatalogItemResponse{
		ID:   ingredient.ID.String(),
		Name: ingredient.Name,
	}, fiber.StatusOK, domain.MessageSuccessRenameIngredient)
}

func (h *catalogHandler) CreateCategory(c *fiber.Ctx) error {
	req, err := h.parseItem(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	category, err := h.catalogService.CreateCategory(c.Context(), req.Name)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedCreateCategory, err)
	}

	return presenters.SuccessResponse(c, domain.CatalogItemResponse{
		ID:   category.ID.String(),
		Name: category.Name,
	}, fiber.StatusCreated, domain.MessageSuccessCreateCategory)
}

func (h *catalogHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.catalogService.ListCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, presenters.ToCategoryResponses(categories), fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *catalogHandler) RenameCategory(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParseID, err)
	}
	req, err := h.parseItem(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	category, err := h.catalogService.RenameCategory(c.Context(), id, req.Name)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedRenameCategory, err)
	}

	return presenters.SuccessResponse(c, domain.CatalogItemResponse{
		ID:   category.ID.String(),
		Name: category.Name,
	}, fiber.StatusOK, domain.MessageSuccessRenameCategory)
}
