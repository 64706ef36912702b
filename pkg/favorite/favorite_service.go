package favorite

import (
	"context"
	"errors"

	"recipe-management/domain"
	"recipe-management/entities"
	"recipe-management/internal/utils/logger"
	"recipe-management/pkg/changeset"
	"recipe-management/pkg/recipe"
	"recipe-management/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FavoriteService interface {
		AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) error
		RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) error
		GetFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error)
	}

	favoriteService struct {
		userRepository     user.UserRepository
		recipeRepository   recipe.RecipeRepository
		favoriteRepository FavoriteRepository
		log                *logger.Logger
	}
)

func NewFavoriteService(
	userRepository user.UserRepository,
	recipeRepository recipe.RecipeRepository,
	favoriteRepository FavoriteRepository,
	log *logger.Logger,
) FavoriteService {
	return &favoriteService{
		userRepository:     userRepository,
		recipeRepository:   recipeRepository,
		favoriteRepository: favoriteRepository,
		log:                log.With("service", "FavoriteService"),
	}
}

// AddFavorite is idempotent. The self-favorite rule is checked before the
// existing-favorite short circuit, so an author is always rejected.
func (s *favoriteService) AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) error {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotRegistered
		}
		return err
	}

	r, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if r.AuthorID == u.ID {
		s.log.Warn("self favorite rejected", "user_id", userID, "recipe_id", recipeID)
		return domain.ErrSelfFavorite
	}

	if _, err := s.favoriteRepository.GetFavorite(ctx, userID, recipeID); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	favorite, err := entities.NewFavorite(userID, recipeID)
	if err != nil {
		return err
	}
	u.AddFavorite(favorite)

	ctx = changeset.Begin(ctx)
	if err := s.favoriteRepository.AddFavorite(ctx, favorite); err != nil {
		return err
	}
	if err := s.favoriteRepository.SaveChanges(ctx); err != nil {
		return err
	}

	s.log.Info("favorite added", "user_id", userID, "recipe_id", recipeID)
	return nil
}

// RemoveFavorite succeeds without writing when there is nothing to remove.
func (s *favoriteService) RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) error {
	if _, err := s.favoriteRepository.GetFavorite(ctx, userID, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	ctx = changeset.Begin(ctx)
	if err := s.favoriteRepository.DeleteFavorite(ctx, userID, recipeID); err != nil {
		return err
	}
	if err := s.favoriteRepository.SaveChanges(ctx); err != nil {
		return err
	}

	s.log.Info("favorite removed", "user_id", userID, "recipe_id", recipeID)
	return nil
}

func (s *favoriteService) GetFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error) {
	if _, err := s.userRepository.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotRegistered
		}
		return nil, err
	}

	return s.favoriteRepository.GetFavoriteRecipesByUser(ctx, userID)
}
