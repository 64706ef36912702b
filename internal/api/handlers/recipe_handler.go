package handlers

import (
	"net/url"

	"recipe-management/domain"
	"recipe-management/entities"
	"recipe-management/internal/api/presenters"
	"recipe-management/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		AddRecipe(c *fiber.Ctx) error
		GetRecipe(c *fiber.Ctx) error
		GetRecipeByName(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		GetRecipesByIngredient(c *fiber.Ctx) error
		GetRecipesByCategory(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

// buildRecipe assembles the aggregate through its add methods so entity
// validation runs exactly as it would for any other caller.
func buildRecipe(req *domain.AddRecipeRequest) (*entities.Recipe, error) {
	authorID, err := parseUUID(req.AuthorID)
	if err != nil {
		return nil, err
	}

	r, err := entities.NewRecipe(req.Name, authorID, req.Description)
	if err != nil {
		return nil, err
	}
	for _, s := range req.Steps {
		if err := r.AddStep(s.Description, s.Order); err != nil {
			return nil, err
		}
	}
	for _, i := range req.Ingredients {
		ingredientID, err := parseUUID(i.IngredientID)
		if err != nil {
			return nil, err
		}
		if err := r.AddIngredient(ingredientID, i.Amount); err != nil {
			return nil, err
		}
	}
	for _, raw := range req.CategoryIDs {
		categoryID, err := parseUUID(raw)
		if err != nil {
			return nil, err
		}
		if err := r.AddCategory(categoryID); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (h *recipeHandler) AddRecipe(c *fiber.Ctx) error {
	req := new(domain.AddRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddRecipe, err)
	}

	r, err := buildRecipe(req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddRecipe, err)
	}

	if err := h.recipeService.AddRecipe(c.Context(), r); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedAddRecipe, err)
	}

	return presenters.SuccessResponse(c, presenters.ToRecipeResponse(r), fiber.StatusCreated, domain.MessageSuccessAddRecipe)
}

func (h *recipeHandler) GetRecipe(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParseID, err)
	}

	r, err := h.recipeService.GetRecipeByID(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, presenters.ToRecipeResponse(r), fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) GetRecipeByName(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipeDetail, err)
	}

	r, err := h.recipeService.GetRecipeByName(c.Context(), name)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, presenters.ToRecipeResponse(r), fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParseID, err)
	}

	if err := h.recipeService.DeleteRecipe(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) GetRecipesByIngredient(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParseID, err)
	}

	recipes, err := h.recipeService.GetRecipesByIngredient(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, presenters.ToRecipeResponses(recipes), fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipesByCategory(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParseID, err)
	}

	recipes, err := h.recipeService.GetRecipesByCategory(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, presenters.ToRecipeResponses(recipes), fiber.StatusOK, domain.MessageSuccessGetRecipes)
}
