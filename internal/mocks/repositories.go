// Package mocks holds testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"recipe-management/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func userOrNil(v interface{}) *entities.User {
	u, _ := v.(*entities.User)
	return u
}

func recipeOrNil(v interface{}) *entities.Recipe {
	r, _ := v.(*entities.Recipe)
	return r
}

func recipesOrNil(v interface{}) []*entities.Recipe {
	r, _ := v.([]*entities.Recipe)
	return r
}

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *UserRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *UserRepository) AddUser(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) SaveChanges(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type RecipeRepository struct {
	mock.Mock
}

func (m *RecipeRepository) GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	args := m.Called(ctx, id)
	return recipeOrNil(args.Get(0)), args.Error(1)
}

func (m *RecipeRepository) GetRecipeByName(ctx context.Context, name string) (*entities.Recipe, error) {
	args := m.Called(ctx, name)
	return recipeOrNil(args.Get(0)), args.Error(1)
}

func (m *RecipeRepository) GetRecipesByAuthorID(ctx context.Context, authorID uuid.UUID) ([]*entities.Recipe, error) {
	args := m.Called(ctx, authorID)
	return recipesOrNil(args.Get(0)), args.Error(1)
}

func (m *RecipeRepository) GetRecipesByIngredient(ctx context.Context, ingredientID uuid.UUID) ([]*entities.Recipe, error) {
	args := m.Called(ctx, ingredientID)
	return recipesOrNil(args.Get(0)), args.Error(1)
}

func (m *RecipeRepository) GetRecipesByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entities.Recipe, error) {
	args := m.Called(ctx, categoryID)
	return recipesOrNil(args.Get(0)), args.Error(1)
}

func (m *RecipeRepository) AddRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return m.Called(ctx, recipe).Error(0)
}

func (m *RecipeRepository) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *RecipeRepository) SaveChanges(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type FavoriteRepository struct {
	mock.Mock
}

func (m *FavoriteRepository) GetFavorite(ctx context.Context, userID, recipeID uuid.UUID) (*entities.Favorite, error) {
	args := m.Called(ctx, userID, recipeID)
	f, _ := args.Get(0).(*entities.Favorite)
	return f, args.Error(1)
}

func (m *FavoriteRepository) GetFavoriteRecipesByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Recipe, error) {
	args := m.Called(ctx, userID)
	return recipesOrNil(args.Get(0)), args.Error(1)
}

func (m *FavoriteRepository) AddFavorite(ctx context.Context, favorite *entities.Favorite) error {
	return m.Called(ctx, favorite).Error(0)
}

func (m *FavoriteRepository) DeleteFavorite(ctx context.Context, userID, recipeID uuid.UUID) error {
	return m.Called(ctx, userID, recipeID).Error(0)
}

func (m *FavoriteRepository) SaveChanges(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type IngredientRepository struct {
	mock.Mock
}

func (m *IngredientRepository) GetIngredientByID(ctx context.Context, id uuid.UUID) (*entities.Ingredient, error) {
	args := m.Called(ctx, id)
	i, _ := args.Get(0).(*entities.Ingredient)
	return i, args.Error(1)
}

func (m *IngredientRepository) GetIngredientByName(ctx context.Context, name string) (*entities.Ingredient, error) {
	args := m.Called(ctx, name)
	i, _ := args.Get(0).(*entities.Ingredient)
	return i, args.Error(1)
}

func (m *IngredientRepository) ListIngredients(ctx context.Context) ([]*entities.Ingredient, error) {
	args := m.Called(ctx)
	i, _ := args.Get(0).([]*entities.Ingredient)
	return i, args.Error(1)
}

func (m *IngredientRepository) AddIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return m.Called(ctx, ingredient).Error(0)
}

func (m *IngredientRepository) UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return m.Called(ctx, ingredient).Error(0)
}

func (m *IngredientRepository) SaveChanges(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type CategoryRepository struct {
	mock.Mock
}

func (m *CategoryRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*entities.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entities.Category)
	return c, args.Error(1)
}

func (m *CategoryRepository) GetCategoryByName(ctx context.Context, name string) (*entities.Category, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(*entities.Category)
	return c, args.Error(1)
}

func (m *CategoryRepository) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]*entities.Category)
	return c, args.Error(1)
}

func (m *CategoryRepository) AddCategory(ctx context.Context, category *entities.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *CategoryRepository) UpdateCategory(ctx context.Context, category *entities.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *CategoryRepository) SaveChanges(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
