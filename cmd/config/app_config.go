package config

import (
	"fmt"
	"os"
	"time"

	"recipe-management/internal/api/handlers"
	"recipe-management/internal/api/routes"
	"recipe-management/internal/middleware"
	"recipe-management/internal/utils"
	"recipe-management/internal/utils/logger"
	"recipe-management/pkg/catalog"
	"recipe-management/pkg/favorite"
	"recipe-management/pkg/recipe"
	"recipe-management/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB, log *logger.Logger) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName: "recipe-management",
	})
	middlewares := middleware.NewMiddleware(log, utils.GetConfig("CORS_ALLOW_ORIGINS"))
	validator := utils.Validate

	// access log file and limiter
	if utils.GetConfig("LOG_MODE") != "test" {
		if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
			return nil, fmt.Errorf("error creating logs directory: %w", err)
		}
		file, err := os.OpenFile(
			"./logs/app.log",
			os.O_RDWR|os.O_CREATE|os.O_APPEND,
			0666,
		)
		if err != nil {
			return nil, fmt.Errorf("error opening access log: %w", err)
		}
		app.Use(fiberLogger.New(fiberLogger.Config{
			TimeFormat: "2006-01-02 15:04:05",
			TimeZone:   "UTC",
			Output:     file,
		}))
	}

	if limit := utils.GetConfigInt("RATE_LIMIT_MAX", 10); limit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        limit,
			Expiration: 1 * time.Second,
		}))
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	favoriteRepository := favorite.NewFavoriteRepository(db)
	ingredientRepository := catalog.NewIngredientRepository(db)
	categoryRepository := catalog.NewCategoryRepository(db)

	// Service
	userService := user.NewUserService(userRepository, log)
	recipeService := recipe.NewRecipeService(recipeRepository, userRepository, log)
	favoriteService := favorite.NewFavoriteService(userRepository, recipeRepository, favoriteRepository, log)
	catalogService := catalog.NewCatalogService(ingredientRepository, categoryRepository, log)

	// Handler
	userHandler := handlers.NewUserHandler(userService, recipeService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	catalogHandler := handlers.NewCatalogHandler(catalogService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		RecipeHandler:   recipeHandler,
		FavoriteHandler: favoriteHandler,
		CatalogHandler:  catalogHandler,
		Middleware:      middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
