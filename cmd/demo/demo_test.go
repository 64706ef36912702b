package demo_test

import (
	"context"
	"testing"

	"recipe-management/cmd/demo"
	"recipe-management/entities"
	"recipe-management/internal/testdb"
	"recipe-management/internal/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSeedsOnceAndIsRepeatable(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()

	first, err := demo.Run(ctx, db, logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, demo.Username, first.User.Username)
	assert.Equal(t, demo.RecipeName, first.Recipe.Name)
	assert.True(t, first.Recipe.IsValid())

	second, err := demo.Run(ctx, db, logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, first.Recipe.ID, second.Recipe.ID)
	assert.Equal(t, first.User.ID, second.User.ID)

	assert.EqualValues(t, 1, testdb.Count(t, db, &entities.User{}, ""))
	assert.EqualValues(t, 1, testdb.Count(t, db, &entities.Recipe{}, ""))
	assert.EqualValues(t, 1, testdb.Count(t, db, &entities.RecipeIngredient{}, "amount = ?", "200g"))
}
