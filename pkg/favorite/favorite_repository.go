package favorite

import (
	"context"

	"recipe-management/entities"
	"recipe-management/pkg/changeset"
	"recipe-management/pkg/recipe"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FavoriteRepository interface {
		GetFavorite(ctx context.Context, userID, recipeID uuid.UUID) (*entities.Favorite, error)
		GetFavoriteRecipesByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error)
		AddFavorite(ctx context.Context, favorite *entities.Favorite) error
		DeleteFavorite(ctx context.Context, userID, recipeID uuid.UUID) error
		SaveChanges(ctx context.Context) error
	}

	favoriteRepository struct {
		db *gorm.DB
	}
)

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) GetFavorite(ctx context.Context, userID, recipeID uuid.UUID) (*entities.Favorite, error) {
	var favorite entities.Favorite
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&favorite).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) GetFavoriteRecipesByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := recipe.WithDetails(r.db.WithContext(ctx)).
		Joins("JOIN favorites ON favorites.recipe_id = recipes.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *favoriteRepository) AddFavorite(ctx context.Context, favorite *entities.Favorite) error {
	return changeset.Stage(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Create(favorite).Error
	})
}

func (r *favoriteRepository) DeleteFavorite(ctx context.Context, userID, recipeID uuid.UUID) error {
	return changeset.Stage(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
			Delete(&entities.Favorite{}).Error
	})
}

func (r *favoriteRepository) SaveChanges(ctx context.Context) error {
	return changeset.Save(ctx, r.db)
}
