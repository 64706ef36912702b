package catalog

import (
	"context"

	"recipe-management/entities"
	"recipe-management/pkg/changeset"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	IngredientRepository interface {
		GetIngredientByID(ctx context.Context, id uuid.UUID) (*entities.Ingredient, error)
		GetIngredientByName(ctx context.Context, name string) (*entities.Ingredient, error)
		ListIngredients(ctx context.Context) ([]*entities.Ingredient, error)
		AddIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		SaveChanges(ctx context.Context) error
	}

	CategoryRepository interface {
		GetCategoryByID(ctx context.Context, id uuid.UUID) (*entities.Category, error)
		GetCategoryByName(ctx context.Context, name string) (*entities.Category, error)
		ListCategories(ctx context.Context) ([]*entities.Category, error)
		AddCategory(ctx context.Context, category *entities.Category) error
		UpdateCategory(ctx context.Context, category *entities.Category) error
		SaveChanges(ctx context.Context) error
	}

	ingredientRepository struct {
		db *gorm.DB
	}

	categoryRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *ingredientRepository) GetIngredientByID(ctx context.Context, id uuid.UUID) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) GetIngredientByName(ctx context.Context, name string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) ListIngredients(ctx context.Context) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).Order("name asc").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) AddIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return changeset.Stage(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(ingredient).Error
	})
}

func (r *ingredientRepository) UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return changeset.Stage(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Model(&entities.Ingredient{}).
			Where("id = ?", ingredient.ID).
			Update("name", ingredient.Name).Error
	})
}

func (r *ingredientRepository) SaveChanges(ctx context.Context) error {
	return changeset.Save(ctx, r.db)
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetCategoryByName(ctx context.Context, name string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) AddCategory(ctx context.Context, category *entities.Category) error {
	return changeset.Stage(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(category).Error
	})
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category *entities.Category) error {
	return changeset.Stage(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Model(&entities.Category{}).
			Where("id = ?", category.ID).
			Update("name", category.Name).Error
	})
}

func (r *categoryRepository) SaveChanges(ctx context.Context) error {
	return changeset.Save(ctx, r.db)
}
