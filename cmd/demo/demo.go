// Package demo seeds a database with one user, one catalog entry of each
// kind and a recipe tying them together.
package demo

import (
	"context"
	"errors"

	"recipe-management/domain"
	"recipe-management/entities"
	"recipe-management/internal/utils/logger"
	"recipe-management/internal/utils/password"
	"recipe-management/pkg/catalog"
	"recipe-management/pkg/recipe"
	"recipe-management/pkg/user"

	"gorm.io/gorm"
)

const (
	Username       = "demoUser"
	IngredientName = "Noodles"
	CategoryName   = "Dinner"
	RecipeName     = "Pasta"
)

type Result struct {
	User       *entities.User
	Ingredient *entities.Ingredient
	Category   *entities.Category
	Recipe     *entities.Recipe
}

// Run is safe to repeat: anything already present is looked up, not recreated.
func Run(ctx context.Context, db *gorm.DB, log *logger.Logger) (*Result, error) {
	log = log.With("component", "demo")

	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	userService := user.NewUserService(userRepository, log)
	recipeService := recipe.NewRecipeService(recipeRepository, userRepository, log)
	catalogService := catalog.NewCatalogService(catalog.NewIngredientRepository(db), catalog.NewCategoryRepository(db), log)

	res := &Result{}

	u, err := userService.GetUserByUsername(ctx, Username)
	if errors.Is(err, domain.ErrUserNotFound) {
		hash, herr := password.Hash("demo-password")
		if herr != nil {
			return nil, herr
		}
		u, err = userService.RegisterUser(ctx, Username, hash, "demo@example.com")
	}
	if err != nil {
		return nil, err
	}
	res.User = u
	log.Info("user ready", "username", u.Username, "user_id", u.ID)

	ingredient, err := catalogService.GetIngredientByName(ctx, IngredientName)
	if errors.Is(err, domain.ErrIngredientNotFound) {
		ingredient, err = catalogService.CreateIngredient(ctx, IngredientName)
	}
	if err != nil {
		return nil, err
	}
	res.Ingredient = ingredient
	log.Info("ingredient ready", "name", ingredient.Name, "ingredient_id", ingredient.ID)

	category, err := catalogService.GetCategoryByName(ctx, CategoryName)
	if errors.Is(err, domain.ErrCategoryNotFound) {
		category, err = catalogService.CreateCategory(ctx, CategoryName)
	}
	if err != nil {
		return nil, err
	}
	res.Category = category
	log.Info("category ready", "name", category.Name, "category_id", category.ID)

	existing, err := recipeService.GetRecipeByName(ctx, RecipeName)
	switch {
	case err == nil:
		res.Recipe = existing
		log.Info("recipe already present", "recipe_id", existing.ID)
		return res, nil
	case !errors.Is(err, domain.ErrRecipeNotFound):
		return nil, err
	}

	r, err := entities.NewRecipe(RecipeName, u.ID, "Simple pasta dish")
	if err != nil {
		return nil, err
	}
	if err := r.AddStep("Boil water", 1); err != nil {
		return nil, err
	}
	if err := r.AddIngredient(ingredient.ID, "200g"); err != nil {
		return nil, err
	}
	if err := r.AddCategory(category.ID); err != nil {
		return nil, err
	}
	if err := recipeService.AddRecipe(ctx, r); err != nil {
		return nil, err
	}
	res.Recipe = r

	return res, nil
}
