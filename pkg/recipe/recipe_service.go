package recipe

import (
	"context"
	"errors"

	"recipe-management/domain"
	"recipe-management/entities"
	"recipe-management/internal/utils/logger"
	"recipe-management/pkg/changeset"
	"recipe-management/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		AddRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id uuid.UUID) error
		GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error)
		GetRecipeByName(ctx context.Context, name string) (*entities.Recipe, error)
		GetRecipesByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error)
		GetRecipesByIngredient(ctx context.Context, ingredientID uuid.UUID) ([]*entities.Recipe, error)
		GetRecipesByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entities.Recipe, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		userRepository   user.UserRepository
		log              *logger.Logger
	}
)

func NewRecipeService(recipeRepository RecipeRepository, userRepository user.UserRepository, log *logger.Logger) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		userRepository:   userRepository,
		log:              log.With("service", "RecipeService"),
	}
}

// AddRecipe checks, in this order, that the author is registered, that the
// name is free and that the recipe is complete. Nothing is written unless
// all three pass.
func (s *recipeService) AddRecipe(ctx context.Context, recipe *entities.Recipe) error {
	if recipe == nil {
		return domain.NewValidationError("recipe", "recipe is required")
	}

	if _, err := s.userRepository.GetUserByID(ctx, recipe.AuthorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Warn("recipe author not registered", "author_id", recipe.AuthorID)
			return domain.ErrUserNotRegistered
		}
		return err
	}

	if _, err := s.recipeRepository.GetRecipeByName(ctx, recipe.Name); err == nil {
		s.log.Warn("recipe name already taken", "name", recipe.Name)
		return domain.ErrDuplicateRecipeName
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if !recipe.IsValid() {
		s.log.Warn("recipe incomplete", "name", recipe.Name,
			"steps", len(recipe.Steps),
			"ingredients", len(recipe.RecipeIngredients),
			"categories", len(recipe.RecipeCategories))
		return domain.ErrIncompleteRecipe
	}

	ctx = changeset.Begin(ctx)
	if err := s.recipeRepository.AddRecipe(ctx, recipe); err != nil {
		return err
	}
	if err := s.recipeRepository.SaveChanges(ctx); err != nil {
		return err
	}

	s.log.Info("recipe added", "recipe_id", recipe.ID, "name", recipe.Name)
	return nil
}

// DeleteRecipe leaves removal of steps, edges and favorites to the repository.
func (s *recipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	ctx = changeset.Begin(ctx)
	if err := s.recipeRepository.DeleteRecipe(ctx, id); err != nil {
		return err
	}
	if err := s.recipeRepository.SaveChanges(ctx); err != nil {
		return err
	}

	s.log.Info("recipe deleted", "recipe_id", id)
	return nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) GetRecipeByName(ctx context.Context, name string) (*entities.Recipe, error) {
	if domain.IsBlank(name) {
		return nil, domain.NewValidationError("name", "recipe name cannot be empty")
	}

	recipe, err := s.recipeRepository.GetRecipeByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) GetRecipesByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error) {
	return s.recipeRepository.GetRecipesByAuthorID(ctx, userID)
}

func (s *recipeService) GetRecipesByIngredient(ctx context.Context, ingredientID uuid.UUID) ([]*entities.Recipe, error) {
	return s.recipeRepository.GetRecipesByIngredient(ctx, ingredientID)
}

func (s *recipeService) GetRecipesByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entities.Recipe, error) {
	return s.recipeRepository.GetRecipesByCategory(ctx, categoryID)
}
