package routes

import (
	"recipe-management/internal/api/handlers"
	"recipe-management/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	RecipeHandler   handlers.RecipeHandler
	FavoriteHandler handlers.FavoriteHandler
	CatalogHandler  handlers.CatalogHandler
	Middleware      middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.RequestLogger())
	c.User()
	c.Recipe()
	c.Catalog()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Get("/by-username/:username", c.UserHandler.GetUserByUsername)
		user.Get("/:id", c.UserHandler.GetUser)
		user.Patch("/:id/email", c.UserHandler.UpdateEmail)
		user.Get("/:id/recipes", c.UserHandler.GetUserRecipes)

		user.Get("/:id/favorites", c.FavoriteHandler.GetFavorites)
		user.Post("/:id/favorites/:recipe_id", c.FavoriteHandler.AddFavorite)
		user.Delete("/:id/favorites/:recipe_id", c.FavoriteHandler.RemoveFavorite)
	}
}

func (c *Config) Recipe() {
	recipes := c.App.Group("/api/v1/recipes")
	recipes.Post("", c.RecipeHandler.AddRecipe)
	recipes.Get("/by-name/:name", c.RecipeHandler.GetRecipeByName)
	recipes.Get("/:id", c.RecipeHandler.GetRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
}

func (c *Config) Catalog() {
	ingredients := c.App.Group("/api/v1/ingredients")
	ingredients.Post("", c.CatalogHandler.CreateIngredient)
	ingredients.Get("", c.CatalogHandler.ListIngredients)
	ingredients.Patch("/:id", c.CatalogHandler.RenameIngredient)
	ingredients.Get("/:id/recipes", c.RecipeHandler.GetRecipesByIngredient)

	categories := c.App.Group("/api/v1/categories")
	categories.Post("", c.CatalogHandler.CreateCategory)
	categories.Get("", c.CatalogHandler.ListCategories)
	categories.Patch("/:id", c.CatalogHandler.RenameCategory)
	categories.Get("/:id/recipes", c.RecipeHandler.GetRecipesByCategory)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
