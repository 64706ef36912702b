package entities_test

import (
	"testing"

	"recipe-management/domain"
	"recipe-management/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecipe(t *testing.T) {
	authorID := uuid.New()

	r, err := entities.NewRecipe("Pancakes", authorID, "")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, r.ID)
	assert.Equal(t, authorID, r.AuthorID)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := entities.NewRecipe(name, authorID, "desc")
		assert.ErrorIs(t, err, domain.ErrValidation, "name %q", name)
	}
}

func TestRecipeIsValidNeedsOneOfEach(t *testing.T) {
	r, err := entities.NewRecipe("Pancakes", uuid.New(), "")
	require.NoError(t, err)
	assert.False(t, r.IsValid())

	require.NoError(t, r.AddStep("Mix", 1))
	assert.False(t, r.IsValid())

	require.NoError(t, r.AddIngredient(uuid.New(), "2 cups"))
	assert.False(t, r.IsValid())

	require.NoError(t, r.AddCategory(uuid.New()))
	assert.True(t, r.IsValid())
}

func TestRecipeAddStepRejectsInvalidInput(t *testing.T) {
	r, _ := entities.NewRecipe("Pancakes", uuid.New(), "")

	assert.ErrorIs(t, r.AddStep("", 1), domain.ErrValidation)
	assert.ErrorIs(t, r.AddStep("Mix", 0), domain.ErrValidation)
	assert.ErrorIs(t, r.AddStep("Mix", -3), domain.ErrValidation)
	assert.Empty(t, r.Steps)

	// duplicate orders are accepted here and left to storage
	require.NoError(t, r.AddStep("Mix", 1))
	require.NoError(t, r.AddStep("Stir", 1))
	require.Len(t, r.Steps, 2)
	assert.Equal(t, r.ID, r.Steps[0].RecipeID)
}

func TestRecipeAddIngredientIgnoresDuplicates(t *testing.T) {
	r, _ := entities.NewRecipe("Pancakes", uuid.New(), "")
	flour := uuid.New()

	require.NoError(t, r.AddIngredient(flour, "2 cups"))
	require.NoError(t, r.AddIngredient(flour, "3 cups"))
	require.Len(t, r.RecipeIngredients, 1)
	assert.Equal(t, "2 cups", r.RecipeIngredients[0].Amount)
	assert.True(t, r.HasIngredient(flour))

	assert.ErrorIs(t, r.AddIngredient(uuid.Nil, ""), domain.ErrValidation)
	assert.Len(t, r.RecipeIngredients, 1)
}

func TestRecipeAddCategoryIgnoresDuplicates(t *testing.T) {
	r, _ := entities.NewRecipe("Pancakes", uuid.New(), "")
	breakfast := uuid.New()

	require.NoError(t, r.AddCategory(breakfast))
	require.NoError(t, r.AddCategory(breakfast))
	assert.Len(t, r.RecipeCategories, 1)
	assert.ErrorIs(t, r.AddCategory(uuid.Nil), domain.ErrValidation)
}

func TestRecipeRenameKeepsStateOnFailure(t *testing.T) {
	r, _ := entities.NewRecipe("Pancakes", uuid.New(), "")

	assert.ErrorIs(t, r.Rename(" "), domain.ErrValidation)
	assert.Equal(t, "Pancakes", r.Name)

	require.NoError(t, r.Rename("Crepes"))
	assert.Equal(t, "Crepes", r.Name)

	r.UpdateDescription("thin")
	assert.Equal(t, "thin", r.Description)
}

func TestStepMutators(t *testing.T) {
	s, err := entities.NewStep(uuid.New(), 2, "Whisk")
	require.NoError(t, err)

	assert.ErrorIs(t, s.ChangeOrder(0), domain.ErrValidation)
	assert.Equal(t, 2, s.Order)
	require.NoError(t, s.ChangeOrder(5))
	assert.Equal(t, 5, s.Order)

	assert.ErrorIs(t, s.UpdateDescription(""), domain.ErrValidation)
	assert.Equal(t, "Whisk", s.Description)
}
