package favorite_test

import (
	"context"
	"testing"

	"recipe-management/domain"
	"recipe-management/entities"
	"recipe-management/internal/mocks"
	"recipe-management/internal/utils/logger"
	"recipe-management/pkg/favorite"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	users     *mocks.UserRepository
	recipes   *mocks.RecipeRepository
	favorites *mocks.FavoriteRepository
	svc       favorite.FavoriteService
}

func newFixture() *fixture {
	f := &fixture{
		users:     &mocks.UserRepository{},
		recipes:   &mocks.RecipeRepository{},
		favorites: &mocks.FavoriteRepository{},
	}
	f.svc = favorite.NewFavoriteService(f.users, f.recipes, f.favorites, logger.NewNop())
	return f
}

func (f *fixture) assertNothingWritten(t *testing.T) {
	t.Helper()
	f.favorites.AssertNotCalled(t, "AddFavorite", mock.Anything, mock.Anything)
	f.favorites.AssertNotCalled(t, "SaveChanges", mock.Anything)
}

func TestAddFavorite_Success(t *testing.T) {
	f := newFixture()
	bob, _ := entities.NewUser("bob", "hash", "")
	soup, _ := entities.NewRecipe("Soup", uuid.New(), "")

	f.users.On("GetUserByID", mock.Anything, bob.ID).Return(bob, nil)
	f.recipes.On("GetRecipeByID", mock.Anything, soup.ID).Return(soup, nil)
	f.favorites.On("GetFavorite", mock.Anything, bob.ID, soup.ID).Return(nil, gorm.ErrRecordNotFound)
	f.favorites.On("AddFavorite", mock.Anything, mock.MatchedBy(func(fav *entities.Favorite) bool {
		return fav.UserID == bob.ID && fav.RecipeID == soup.ID
	})).Return(nil)
	f.favorites.On("SaveChanges", mock.Anything).Return(nil)

	require.NoError(t, f.svc.AddFavorite(context.Background(), bob.ID, soup.ID))
	assert.True(t, bob.HasFavorite(soup.ID))
	f.favorites.AssertExpectations(t)
}

func TestAddFavorite_AlreadyFavoritedIsNoop(t *testing.T) {
	f := newFixture()
	bob, _ := entities.NewUser("bob", "hash", "")
	soup, _ := entities.NewRecipe("Soup", uuid.New(), "")
	existing, _ := entities.NewFavorite(bob.ID, soup.ID)

	f.users.On("GetUserByID", mock.Anything, bob.ID).Return(bob, nil)
	f.recipes.On("GetRecipeByID", mock.Anything, soup.ID).Return(soup, nil)
	f.favorites.On("GetFavorite", mock.Anything, bob.ID, soup.ID).Return(existing, nil)

	require.NoError(t, f.svc.AddFavorite(context.Background(), bob.ID, soup.ID))
	f.assertNothingWritten(t)
}

func TestAddFavorite_UnregisteredUser(t *testing.T) {
	f := newFixture()
	userID, recipeID := uuid.New(), uuid.New()
	f.users.On("GetUserByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

	err := f.svc.AddFavorite(context.Background(), userID, recipeID)
	assert.ErrorIs(t, err, domain.ErrUserNotRegistered)
	f.recipes.AssertNotCalled(t, "GetRecipeByID", mock.Anything, mock.Anything)
	f.assertNothingWritten(t)
}

func TestAddFavorite_UnknownRecipe(t *testing.T) {
	f := newFixture()
	bob, _ := entities.NewUser("bob", "hash", "")
	recipeID := uuid.New()
	f.users.On("GetUserByID", mock.Anything, bob.ID).Return(bob, nil)
	f.recipes.On("GetRecipeByID", mock.Anything, recipeID).Return(nil, gorm.ErrRecordNotFound)

	err := f.svc.AddFavorite(context.Background(), bob.ID, recipeID)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	f.assertNothingWritten(t)
}

func TestAddFavorite_SelfFavoriteRejected(t *testing.T) {
	f := newFixture()
	carol, _ := entities.NewUser("carol", "hash", "")
	soup, _ := entities.NewRecipe("Soup", carol.ID, "")
	f.users.On("GetUserByID", mock.Anything, carol.ID).Return(carol, nil)
	f.recipes.On("GetRecipeByID", mock.Anything, soup.ID).Return(soup, nil)

	err := f.svc.AddFavorite(context.Background(), carol.ID, soup.ID)
	assert.ErrorIs(t, err, domain.ErrSelfFavorite)
	f.favorites.AssertNotCalled(t, "GetFavorite", mock.Anything, mock.Anything, mock.Anything)
	f.assertNothingWritten(t)
}

func TestRemoveFavorite(t *testing.T) {
	f := newFixture()
	userID, recipeID := uuid.New(), uuid.New()
	existing, _ := entities.NewFavorite(userID, recipeID)
	f.favorites.On("GetFavorite", mock.Anything, userID, recipeID).Return(existing, nil)
	f.favorites.On("DeleteFavorite", mock.Anything, userID, recipeID).Return(nil)
	f.favorites.On("SaveChanges", mock.Anything).Return(nil)

	require.NoError(t, f.svc.RemoveFavorite(context.Background(), userID, recipeID))
	f.favorites.AssertExpectations(t)
}

func TestRemoveFavorite_AbsentIsNoop(t *testing.T) {
	f := newFixture()
	userID, recipeID := uuid.New(), uuid.New()
	f.favorites.On("GetFavorite", mock.Anything, userID, recipeID).Return(nil, gorm.ErrRecordNotFound)

	require.NoError(t, f.svc.RemoveFavorite(context.Background(), userID, recipeID))
	f.favorites.AssertNotCalled(t, "DeleteFavorite", mock.Anything, mock.Anything, mock.Anything)
	f.favorites.AssertNotCalled(t, "SaveChanges", mock.Anything)
}

func TestGetFavoritesByUser(t *testing.T) {
	f := newFixture()
	bob, _ := entities.NewUser("bob", "hash", "")
	soup, _ := entities.NewRecipe("Soup", uuid.New(), "")
	ghost := uuid.New()
	f.users.On("GetUserByID", mock.Anything, bob.ID).Return(bob, nil)
	f.users.On("GetUserByID", mock.Anything, ghost).Return(nil, gorm.ErrRecordNotFound)
	f.favorites.On("GetFavoriteRecipesByUser", mock.Anything, bob.ID).Return([]*entities.Recipe{soup}, nil)

	got, err := f.svc.GetFavoritesByUser(context.Background(), bob.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Soup", got[0].Name)

	_, err = f.svc.GetFavoritesByUser(context.Background(), ghost)
	assert.ErrorIs(t, err, domain.ErrUserNotRegistered)
}
