package handlers

import (
	"net/url"

	"recipe-management/domain"
	"recipe-management/internal/api/presenters"
	"recipe-management/internal/utils/password"
	"recipe-management/pkg/recipe"
	"recipe-management/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
		GetUser(c *fiber.Ctx) error
		GetUserByUsername(c *fiber.Ctx) error
		UpdateEmail(c *fiber.Ctx) error
		GetUserRecipes(c *fiber.Ctx) error
	}

	userHandler struct {
		userService   user.UserService
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, recipeService recipe.RecipeService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService:   userService,
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterUserRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegisterUser, err)
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRegisterUser, err)
	}

	u, err := h.userService.RegisterUser(c.Context(), req.Username, hash, req.Email)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedRegisterUser, err)
	}

	return presenters.SuccessResponse(c, presenters.ToUserResponse(u), fiber.StatusCreated, domain.MessageSuccessRegisterUser)
}

func (h *userHandler) GetUser(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParseID, err)
	}

	u, err := h.userService.GetUserByID(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetUser, err)
	}

	return presenters.SuccessResponse(c, presenters.ToUserResponse(u), fiber.StatusOK, domain.MessageSuccessGetUser)
}

func (h *userHandler) GetUserByUsername(c *fiber.Ctx) error {
	username, err := url.PathUnescape(c.Params("username"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUser, err)
	}

	u, err := h.userService.GetUserByUsername(c.Context(), username)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetUser, err)
	}

	return presenters.SuccessResponse(c, presenters.ToUserResponse(u), fiber.StatusOK, domain.MessageSuccessGetUser)
}

func (h *userHandler) UpdateEmail(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParseID, err)
	}

	req := new(domain.UpdateEmailRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateEmail, err)
	}

	if err := h.userService.UpdateEmail(c.Context(), id, req.Email); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedUpdateEmail, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateEmail)
}

func (h *userHandler) GetUserRecipes(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedParseID, err)
	}

	recipes, err := h.recipeService.GetRecipesByUser(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, presenters.ToRecipeResponses(recipes), fiber.StatusOK, domain.MessageSuccessGetRecipes)
}
