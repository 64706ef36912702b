package entities

import (
	"recipe-management/domain"

	"github.com/google/uuid"
)

type Step struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RecipeID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_steps_recipe_order,priority:1" json:"recipe_id"`
	Order       int       `gorm:"column:step_order;not null;uniqueIndex:idx_steps_recipe_order,priority:2" json:"order"`
	Description string    `gorm:"size:1000;not null" json:"description"`
}

func NewStep(recipeID uuid.UUID, order int, description string) (*Step, error) {
	if domain.IsBlank(description) {
		return nil, domain.NewValidationError("description", "step description cannot be empty")
	}
	if order <= 0 {
		return nil, domain.NewValidationError("order", "step order must be greater than zero")
	}

	return &Step{
		ID:          uuid.New(),
		RecipeID:    recipeID,
		Order:       order,
		Description: description,
	}, nil
}

func (s *Step) UpdateDescription(newDescription string) error {
	if domain.IsBlank(newDescription) {
		return domain.NewValidationError("description", "step description cannot be empty")
	}
	s.Description = newDescription
	return nil
}

func (s *Step) ChangeOrder(newOrder int) error {
	if newOrder <= 0 {
		return domain.NewValidationError("order", "step order must be greater than zero")
	}
	s.Order = newOrder
	return nil
}
