package catalog

import (
	"context"
	"errors"

	"recipe-management/domain"
	"recipe-management/entities"
	"recipe-management/internal/utils/logger"
	"recipe-management/pkg/changeset"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// CatalogService manages ingredients and categories. Name uniqueness is
	// left to the tables' unique indexes, so a duplicate surfaces as the
	// storage error.
	CatalogService interface {
		CreateIngredient(ctx context.Context, name string) (*entities.Ingredient, error)
		RenameIngredient(ctx context.Context, id uuid.UUID, newName string) (*entities.Ingredient, error)
		GetIngredientByName(ctx context.Context, name string) (*entities.Ingredient, error)
		ListIngredients(ctx context.Context) ([]*entities.Ingredient, error)

		CreateCategory(ctx context.Context, name string) (*entities.Category, error)
		RenameCategory(ctx context.Context, id uuid.UUID, newName string) (*entities.Category, error)
		GetCategoryByName(ctx context.Context, name string) (*entities.Category, error)
		ListCategories(ctx context.Context) ([]*entities.Category, error)
	}

	catalogService struct {
		ingredientRepository IngredientRepository
		categoryRepository   CategoryRepository
		log                  *logger.Logger
	}
)

func NewCatalogService(ingredientRepository IngredientRepository, categoryRepository CategoryRepository, log *logger.Logger) CatalogService {
	return &catalogService{
		ingredientRepository: ingredientRepository,
		categoryRepository:   categoryRepository,
		log:                  log.With("service", "CatalogService"),
	}
}

func (s *catalogService) CreateIngredient(ctx context.Context, name string) (*entities.Ingredient, error) {
	ingredient, err := entities.NewIngredient(name)
	if err != nil {
		return nil, err
	}

	ctx = changeset.Begin(ctx)
	if err := s.ingredientRepository.AddIngredient(ctx, ingredient); err != nil {
		return nil, err
	}
	if err := s.ingredientRepository.SaveChanges(ctx); err != nil {
		s.log.Warn("ingredient not created", "name", name, "error", err)
		return nil, err
	}
	return ingredient, nil
}

func (s *catalogService) RenameIngredient(ctx context.Context, id uuid.UUID, newName string) (*entities.Ingredient, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, err
	}
	if err := ingredient.Rename(newName); err != nil {
		return nil, err
	}

	ctx = changeset.Begin(ctx)
	if err := s.ingredientRepository.UpdateIngredient(ctx, ingredient); err != nil {
		return nil, err
	}
	if err := s.ingredientRepository.SaveChanges(ctx); err != nil {
		return nil, err
	}
	return ingredient, nil
}

func (s *catalogService) GetIngredientByName(ctx context.Context, name string) (*entities.Ingredient, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, err
	}
	return ingredient, nil
}

func (s *catalogService) ListIngredients(ctx context.Context) ([]*entities.Ingredient, error) {
	return s.ingredientRepository.ListIngredients(ctx)
}

func (s *catalogService) CreateCategory(ctx context.Context, name string) (*entities.Category, error) {
	category, err := entities.NewCategory(name)
	if err != nil {
		return nil, err
	}

	ctx = changeset.Begin(ctx)
	if err := s.categoryRepository.AddCategory(ctx, category); err != nil {
		return nil, err
	}
	if err := s.categoryRepository.SaveChanges(ctx); err != nil {
		s.log.Warn("category not created", "name", name, "error", err)
		return nil, err
	}
	return category, nil
}

func (s *catalogService) RenameCategory(ctx context.Context, id uuid.UUID, newName string) (*entities.Category, error) {
	category, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	if err := category.Rename(newName); err != nil {
		return nil, err
	}

	ctx = changeset.Begin(ctx)
	if err := s.categoryRepository.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}
	if err := s.categoryRepository.SaveChanges(ctx); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *catalogService) GetCategoryByName(ctx context.Context, name string) (*entities.Category, error) {
	category, err := s.categoryRepository.GetCategoryByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	return s.categoryRepository.ListCategories(ctx)
}
