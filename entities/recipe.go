// File: entities/recipe.go
package entities

import (
	"recipe-management/domain"

	"github.com/google/uuid"
)

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:200;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"size:1000" json:"description,omitempty"`
	AuthorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`

	Author            *User               `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Steps             []*Step             `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"steps"`
	RecipeIngredients []*RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
	RecipeCategories  []*RecipeCategory   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"categories"`
	// schema only, never preloaded
	Favorites []*Favorite `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

func NewRecipe(name string, authorID uuid.UUID, description string) (*Recipe, error) {
	if domain.IsBlank(name) {
		return nil, domain.NewValidationError("name", "recipe name cannot be empty")
	}

	return &Recipe{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		AuthorID:    authorID,
	}, nil
}

func (r *Recipe) Rename(newName string) error {
	if domain.IsBlank(newName) {
		return domain.NewValidationError("name", "recipe name cannot be empty")
	}
	r.Name = newName
	return nil
}

func (r *Recipe) UpdateDescription(description string) {
	r.Description = description
}

// AddStep appends a step. Uniqueness of order within the recipe is left to
// the steps table's unique index.
func (r *Recipe) AddStep(description string, order int) error {
	step, err := NewStep(r.ID, order, description)
	if err != nil {
		return err
	}
	r.Steps = append(r.Steps, step)
	return nil
}

// AddIngredient silently ignores an ingredient that is already linked.
func (r *Recipe) AddIngredient(ingredientID uuid.UUID, amount string) error {
	if r.HasIngredient(ingredientID) {
		return nil
	}
	edge, err := NewRecipeIngredient(r.ID, ingredientID, amount)
	if err != nil {
		return err
	}
	r.RecipeIngredients = append(r.RecipeIngredients, edge)
	return nil
}

// AddCategory silently ignores a category that is already linked.
func (r *Recipe) AddCategory(categoryID uuid.UUID) error {
	if r.HasCategory(categoryID) {
		return nil
	}
	edge, err := NewRecipeCategory(r.ID, categoryID)
	if err != nil {
		return err
	}
	r.RecipeCategories = append(r.RecipeCategories, edge)
	return nil
}

func (r *Recipe) HasIngredient(ingredientID uuid.UUID) bool {
	for _, ri := range r.RecipeIngredients {
		if ri.IngredientID == ingredientID {
			return true
		}
	}
	return false
}

func (r *Recipe) HasCategory(categoryID uuid.UUID) bool {
	for _, rc := range r.RecipeCategories {
		if rc.CategoryID == categoryID {
			return true
		}
	}
	return false
}

// IsValid reports whether the recipe is complete enough to be persisted.
func (r *Recipe) IsValid() bool {
	return !domain.IsBlank(r.Name) &&
		len(r.Steps) >= 1 &&
		len(r.RecipeIngredients) >= 1 &&
		len(r.RecipeCategories) >= 1
}
