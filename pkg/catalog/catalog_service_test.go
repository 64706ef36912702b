package catalog_test

import (
	"context"
	"testing"

	"recipe-management/domain"
	"recipe-management/entities"
	"recipe-management/internal/mocks"
	"recipe-management/internal/utils/logger"
	"recipe-management/pkg/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newService() (*mocks.IngredientRepository, *mocks.CategoryRepository, catalog.CatalogService) {
	ingredients := &mocks.IngredientRepository{}
	categories := &mocks.CategoryRepository{}
	return ingredients, categories, catalog.NewCatalogService(ingredients, categories, logger.NewNop())
}

func TestCreateIngredient(t *testing.T) {
	ingredients, _, svc := newService()
	ingredients.On("AddIngredient", mock.Anything, mock.AnythingOfType("*entities.Ingredient")).Return(nil)
	ingredients.On("SaveChanges", mock.Anything).Return(nil)

	got, err := svc.CreateIngredient(context.Background(), "Flour")
	require.NoError(t, err)
	assert.Equal(t, "Flour", got.Name)
	assert.NotEqual(t, uuid.Nil, got.ID)
	ingredients.AssertExpectations(t)
}

func TestCreateIngredient_Blank(t *testing.T) {
	ingredients, _, svc := newService()

	_, err := svc.CreateIngredient(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
	ingredients.AssertNotCalled(t, "AddIngredient", mock.Anything, mock.Anything)
}

func TestRenameIngredient(t *testing.T) {
	ingredients, _, svc := newService()
	flour, _ := entities.NewIngredient("Flour")
	missing := uuid.New()
	ingredients.On("GetIngredientByID", mock.Anything, flour.ID).Return(flour, nil)
	ingredients.On("GetIngredientByID", mock.Anything, missing).Return(nil, gorm.ErrRecordNotFound)
	ingredients.On("UpdateIngredient", mock.Anything, flour).Return(nil)
	ingredients.On("SaveChanges", mock.Anything).Return(nil)

	got, err := svc.RenameIngredient(context.Background(), flour.ID, "Wheat flour")
	require.NoError(t, err)
	assert.Equal(t, "Wheat flour", got.Name)

	_, err = svc.RenameIngredient(context.Background(), missing, "x")
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
}

func TestGetIngredientByName_NotFound(t *testing.T) {
	ingredients, _, svc := newService()
	ingredients.On("GetIngredientByName", mock.Anything, "Saffron").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetIngredientByName(context.Background(), "Saffron")
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
}

func TestCreateCategory_StorageErrorSurfaces(t *testing.T) {
	_, categories, svc := newService()
	categories.On("AddCategory", mock.Anything, mock.AnythingOfType("*entities.Category")).Return(nil)
	categories.On("SaveChanges", mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := svc.CreateCategory(context.Background(), "Breakfast")
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestRenameCategory_BlankRejected(t *testing.T) {
	_, categories, svc := newService()
	breakfast, _ := entities.NewCategory("Breakfast")
	categories.On("GetCategoryByID", mock.Anything, breakfast.ID).Return(breakfast, nil)

	_, err := svc.RenameCategory(context.Background(), breakfast.ID, " ")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "Breakfast", breakfast.Name)
	categories.AssertNotCalled(t, "UpdateCategory", mock.Anything, mock.Anything)
}

func TestListCategories(t *testing.T) {
	_, categories, svc := newService()
	a, _ := entities.NewCategory("Breakfast")
	b, _ := entities.NewCategory("Dinner")
	categories.On("ListCategories", mock.Anything).Return([]*entities.Category{a, b}, nil)

	got, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
