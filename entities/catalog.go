package entities

import (
	"recipe-management/domain"

	"github.com/google/uuid"
)

type Ingredient struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:200;not null;uniqueIndex" json:"name"`

	RecipeIngredients []*RecipeIngredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:200;not null;uniqueIndex" json:"name"`

	RecipeCategories []*RecipeCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

func NewIngredient(name string) (*Ingredient, error) {
	if domain.IsBlank(name) {
		return nil, domain.NewValidationError("name", "ingredient name cannot be empty")
	}
	return &Ingredient{ID: uuid.New(), Name: name}, nil
}

func (i *Ingredient) Rename(newName string) error {
	if domain.IsBlank(newName) {
		return domain.NewValidationError("name", "ingredient name cannot be empty")
	}
	i.Name = newName
	return nil
}

func NewCategory(name string) (*Category, error) {
	if domain.IsBlank(name) {
		return nil, domain.NewValidationError("name", "category name cannot be empty")
	}
	return &Category{ID: uuid.New(), Name: name}, nil
}

func (c *Category) Rename(newName string) error {
	if domain.IsBlank(newName) {
		return domain.NewValidationError("name", "category name cannot be empty")
	}
	c.Name = newName
	return nil
}
