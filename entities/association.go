package entities

import (
	"time"

	"recipe-management/domain"

	"github.com/google/uuid"
)

// RecipeIngredient links a recipe to an ingredient. Ingredient is filled by
// hydrating reads only.
type RecipeIngredient struct {
	RecipeID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	IngredientID uuid.UUID `gorm:"type:uuid;primaryKey" json:"ingredient_id"`
	Amount       string    `gorm:"size:100" json:"amount,omitempty"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

type RecipeCategory struct {
	RecipeID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey" json:"category_id"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

type Favorite struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp;not null" json:"created_at"`
}

func NewRecipeIngredient(recipeID, ingredientID uuid.UUID, amount string) (*RecipeIngredient, error) {
	if recipeID == uuid.Nil {
		return nil, domain.NewValidationError("recipe_id", "recipe id cannot be empty")
	}
	if ingredientID == uuid.Nil {
		return nil, domain.NewValidationError("ingredient_id", "ingredient id cannot be empty")
	}
	return &RecipeIngredient{RecipeID: recipeID, IngredientID: ingredientID, Amount: amount}, nil
}

func (ri *RecipeIngredient) UpdateAmount(newAmount string) {
	ri.Amount = newAmount
}

func NewRecipeCategory(recipeID, categoryID uuid.UUID) (*RecipeCategory, error) {
	if recipeID == uuid.Nil {
		return nil, domain.NewValidationError("recipe_id", "recipe id cannot be empty")
	}
	if categoryID == uuid.Nil {
		return nil, domain.NewValidationError("category_id", "category id cannot be empty")
	}
	return &RecipeCategory{RecipeID: recipeID, CategoryID: categoryID}, nil
}

func NewFavorite(userID, recipeID uuid.UUID) (*Favorite, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "user id cannot be empty")
	}
	if recipeID == uuid.Nil {
		return nil, domain.NewValidationError("recipe_id", "recipe id cannot be empty")
	}
	return &Favorite{UserID: userID, RecipeID: recipeID, CreatedAt: time.Now().UTC()}, nil
}
