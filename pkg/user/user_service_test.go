package user_test

import (
	"context"
	"errors"
	"testing"

	"recipe-management/domain"
	"recipe-management/entities"
	"recipe-management/internal/mocks"
	"recipe-management/internal/utils/logger"
	"recipe-management/pkg/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newService(repo *mocks.UserRepository) user.UserService {
	return user.NewUserService(repo, logger.NewNop())
}

func TestRegisterUser_Success(t *testing.T) {
	repo := &mocks.UserRepository{}
	repo.On("GetUserByUsername", mock.Anything, "alice").Return(nil, gorm.ErrRecordNotFound)
	repo.On("AddUser", mock.Anything, mock.AnythingOfType("*entities.User")).Return(nil)
	repo.On("SaveChanges", mock.Anything).Return(nil)

	u, err := newService(repo).RegisterUser(context.Background(), "alice", "hash", "a@x.io")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "a@x.io", u.Email)
	repo.AssertExpectations(t)
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	repo := &mocks.UserRepository{}
	existing, _ := entities.NewUser("alice", "hash", "")
	repo.On("GetUserByUsername", mock.Anything, "alice").Return(existing, nil)

	_, err := newService(repo).RegisterUser(context.Background(), "alice", "other", "")
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
	repo.AssertNotCalled(t, "AddUser", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "SaveChanges", mock.Anything)
}

func TestRegisterUser_BlankInput(t *testing.T) {
	repo := &mocks.UserRepository{}
	svc := newService(repo)

	_, err := svc.RegisterUser(context.Background(), "  ", "hash", "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.RegisterUser(context.Background(), "alice", "", "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	repo.AssertNotCalled(t, "GetUserByUsername", mock.Anything, mock.Anything)
}

func TestRegisterUser_LookupFailure(t *testing.T) {
	repo := &mocks.UserRepository{}
	boom := errors.New("connection reset")
	repo.On("GetUserByUsername", mock.Anything, "alice").Return(nil, boom)

	_, err := newService(repo).RegisterUser(context.Background(), "alice", "hash", "")
	assert.ErrorIs(t, err, boom)
	repo.AssertNotCalled(t, "AddUser", mock.Anything, mock.Anything)
}

func TestGetUserByID(t *testing.T) {
	repo := &mocks.UserRepository{}
	u, _ := entities.NewUser("alice", "hash", "")
	missing := uuid.New()
	repo.On("GetUserByID", mock.Anything, u.ID).Return(u, nil)
	repo.On("GetUserByID", mock.Anything, missing).Return(nil, gorm.ErrRecordNotFound)
	svc := newService(repo)

	got, err := svc.GetUserByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	_, err = svc.GetUserByID(context.Background(), missing)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGetUserByUsername(t *testing.T) {
	repo := &mocks.UserRepository{}
	repo.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)
	svc := newService(repo)

	_, err := svc.GetUserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = svc.GetUserByUsername(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateEmail(t *testing.T) {
	repo := &mocks.UserRepository{}
	u, _ := entities.NewUser("alice", "hash", "old@x.io")
	repo.On("GetUserByID", mock.Anything, u.ID).Return(u, nil)
	repo.On("UpdateUser", mock.Anything, u).Return(nil)
	repo.On("SaveChanges", mock.Anything).Return(nil)

	require.NoError(t, newService(repo).UpdateEmail(context.Background(), u.ID, "new@x.io"))
	assert.Equal(t, "new@x.io", u.Email)
	repo.AssertExpectations(t)
}

func TestUpdateEmail_UnknownUser(t *testing.T) {
	repo := &mocks.UserRepository{}
	id := uuid.New()
	repo.On("GetUserByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	err := newService(repo).UpdateEmail(context.Background(), id, "x@y.z")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	repo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
}
