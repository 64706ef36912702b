package domain

import "errors"

var (
	MessageSuccessCreateIngredient = "ingredient created successfully"
	MessageSuccessCreateCategory   = "category created successfully"
	MessageSuccessRenameIngredient = "ingredient renamed successfully"
	MessageSuccessRenameCategory   = "category renamed successfully"
	MessageSuccessGetIngredients   = "success get ingredients"
	MessageSuccessGetCategories    = "success get categories"

	MessageFailedCreateIngredient = "failed to create ingredient"
	MessageFailedCreateCategory   = "failed to create category"
	MessageFailedRenameIngredient = "failed to rename ingredient"
	MessageFailedRenameCategory   = "failed to rename category"
	MessageFailedGetIngredients   = "failed to get ingredients"
	MessageFailedGetCategories    = "failed to get categories"

	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrCategoryNotFound   = errors.New("category not found")
)

type (
	CatalogItemRequest struct {
		Name string `json:"name" validate:"required,notblank,max=200"`
	}

	CatalogItemResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
)
