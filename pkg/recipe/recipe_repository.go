package recipe

import (
	"context"

	"recipe-management/entities"
	"recipe-management/pkg/changeset"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// RecipeRepository returns recipes with author, ordered steps, ingredient
	// edges and category edges preloaded. Single lookups return
	// gorm.ErrRecordNotFound when nothing matches.
	RecipeRepository interface {
		GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error)
		GetRecipeByName(ctx context.Context, name string) (*entities.Recipe, error)
		GetRecipesByAuthorID(ctx context.Context, authorID uuid.UUID) ([]*entities.Recipe, error)
		GetRecipesByIngredient(ctx context.Context, ingredientID uuid.UUID) ([]*entities.Recipe, error)
		GetRecipesByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entities.Recipe, error)
		AddRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id uuid.UUID) error
		SaveChanges(ctx context.Context) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// WithDetails preloads everything a hydrated recipe read carries.
func WithDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("step_order asc") }).
		Preload("RecipeIngredients.Ingredient").
		Preload("RecipeCategories.Category")
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := WithDetails(r.db.WithContext(ctx)).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeByName(ctx context.Context, name string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := WithDetails(r.db.WithContext(ctx)).Where("name = ?", name).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipesByAuthorID(ctx context.Context, authorID uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := WithDetails(r.db.WithContext(ctx)).
		Where("author_id = ?", authorID).
		Order("name asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipesByIngredient(ctx context.Context, ingredientID uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	edges := r.db.WithContext(ctx).
		Model(&entities.RecipeIngredient{}).
		Select("recipe_id").
		Where("ingredient_id = ?", ingredientID)

	if err := WithDetails(r.db.WithContext(ctx)).
		Where("id IN (?)", edges).
		Order("name asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipesByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	edges := r.db.WithContext(ctx).
		Model(&entities.RecipeCategory{}).
		Select("recipe_id").
		Where("category_id = ?", categoryID)

	if err := WithDetails(r.db.WithContext(ctx)).
		Where("id IN (?)", edges).
		Order("name asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) AddRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return changeset.Stage(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return err
		}
		if len(recipe.Steps) > 0 {
			if err := tx.Omit(clause.Associations).Create(&recipe.Steps).Error; err != nil {
				return err
			}
		}
		if len(recipe.RecipeIngredients) > 0 {
			if err := tx.Omit(clause.Associations).Create(&recipe.RecipeIngredients).Error; err != nil {
				return err
			}
		}
		if len(recipe.RecipeCategories) > 0 {
			if err := tx.Omit(clause.Associations).Create(&recipe.RecipeCategories).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteRecipe removes the recipe and every row that depends on it.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	return changeset.Stage(ctx, r.db, func(tx *gorm.DB) error {
		dependents := []interface{}{
			&entities.Favorite{},
			&entities.Step{},
			&entities.RecipeIngredient{},
			&entities.RecipeCategory{},
		}
		for _, model := range dependents {
			if err := tx.Where("recipe_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", id).Delete(&entities.Recipe{}).Error
	})
}

func (r *recipeRepository) SaveChanges(ctx context.Context) error {
	return changeset.Save(ctx, r.db)
}
