package user_test

import (
	"context"
	"testing"

	"recipe-management/domain"
	"recipe-management/entities"
	"recipe-management/internal/testdb"
	"recipe-management/internal/utils/logger"
	"recipe-management/pkg/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDuplicateUsernameKeepsFirstUser(t *testing.T) {
	db := testdb.New(t)
	svc := user.NewUserService(user.NewUserRepository(db), logger.NewNop())
	ctx := context.Background()

	first, err := svc.RegisterUser(ctx, "dave", "hash-1", "dave@example.com")
	require.NoError(t, err)

	_, err = svc.RegisterUser(ctx, "dave", "hash-2", "other@example.com")
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)

	got, err := svc.GetUserByUsername(ctx, "dave")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "hash-1", got.PasswordHash)
	assert.Equal(t, "dave@example.com", got.Email)
	assert.EqualValues(t, 1, testdb.Count(t, db, &entities.User{}, ""))
}

func TestUniqueUsernameEnforcedByStorage(t *testing.T) {
	db := testdb.New(t)
	repo := user.NewUserRepository(db)
	ctx := context.Background()

	a, _ := entities.NewUser("erin", "hash", "")
	b, _ := entities.NewUser("erin", "hash", "")
	require.NoError(t, repo.AddUser(ctx, a))
	assert.Error(t, repo.AddUser(ctx, b))
}

func TestUpdateEmailPersists(t *testing.T) {
	db := testdb.New(t)
	svc := user.NewUserService(user.NewUserRepository(db), logger.NewNop())
	ctx := context.Background()

	u, err := svc.RegisterUser(ctx, "frank", "hash", "frank@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateEmail(ctx, u.ID, ""))

	got, err := svc.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.Email)
}

func TestGetUserByID_Absent(t *testing.T) {
	db := testdb.New(t)
	repo := user.NewUserRepository(db)

	_, err := repo.GetUserByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
