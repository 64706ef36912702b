package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddRecipe       = "recipe added successfully"
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"

	MessageFailedAddRecipe       = "failed to add recipe"
	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedDeleteRecipe    = "failed to delete recipe"

	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrDuplicateRecipeName = errors.New("a recipe with this name already exists")
	ErrIncompleteRecipe    = errors.New("recipe must have at least one step, ingredient, and category")
)

type (
	StepRequest struct {
		Description string `json:"description" validate:"required,notblank,max=1000"`
		Order       int    `json:"order" validate:"required,gt=0"`
	}

	RecipeIngredientRequest struct {
		IngredientID string `json:"ingredient_id" validate:"required,uuid"`
		Amount       string `json:"amount" validate:"max=100"`
	}

	AddRecipeRequest struct {
		Name        string                    `json:"name" validate:"required,notblank,max=200"`
		AuthorID    string                    `json:"author_id" validate:"required,uuid"`
		Description string                    `json:"description" validate:"max=1000"`
		Steps       []StepRequest             `json:"steps" validate:"dive"`
		Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"dive"`
		CategoryIDs []string                  `json:"category_ids" validate:"dive,uuid"`
	}

	StepResponse struct {
		ID          string `json:"id"`
		Order       int    `json:"order"`
		Description string `json:"description"`
	}

	RecipeIngredientResponse struct {
		IngredientID string `json:"ingredient_id"`
		Name         string `json:"name,omitempty"`
		Amount       string `json:"amount,omitempty"`
	}

	RecipeCategoryResponse struct {
		CategoryID string `json:"category_id"`
		Name       string `json:"name,omitempty"`
	}

	RecipeResponse struct {
		ID          string                     `json:"id"`
		Name        string                     `json:"name"`
		Description string                     `json:"description,omitempty"`
		AuthorID    string                     `json:"author_id"`
		Author      string                     `json:"author,omitempty"`
		Steps       []StepResponse             `json:"steps"`
		Ingredients []RecipeIngredientResponse `json:"ingredients"`
		Categories  []RecipeCategoryResponse   `json:"categories"`
		CreatedAt   time.Time                  `json:"created_at"`
	}
)
