package user

import (
	"context"
	"errors"

	"recipe-management/domain"
	"recipe-management/entities"
	"recipe-management/internal/utils/logger"
	"recipe-management/pkg/changeset"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserService interface {
		RegisterUser(ctx context.Context, username, passwordHash, email string) (*entities.User, error)
		GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
		GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
		UpdateEmail(ctx context.Context, userID uuid.UUID, newEmail string) error
	}

	userService struct {
		userRepository UserRepository
		log            *logger.Logger
	}
)

func NewUserService(userRepository UserRepository, log *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		log:            log.With("service", "UserService"),
	}
}

// RegisterUser rejects blank input and taken usernames before anything is written.
func (s *userService) RegisterUser(ctx context.Context, username, passwordHash, email string) (*entities.User, error) {
	if domain.IsBlank(username) {
		return nil, domain.NewValidationError("username", "username cannot be empty")
	}
	if domain.IsBlank(passwordHash) {
		return nil, domain.NewValidationError("password_hash", "password hash cannot be empty")
	}

	if _, err := s.userRepository.GetUserByUsername(ctx, username); err == nil {
		s.log.Warn("username already taken", "username", username)
		return nil, domain.ErrDuplicateUsername
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user, err := entities.NewUser(username, passwordHash, email)
	if err != nil {
		return nil, err
	}

	ctx = changeset.Begin(ctx)
	if err := s.userRepository.AddUser(ctx, user); err != nil {
		return nil, err
	}
	if err := s.userRepository.SaveChanges(ctx); err != nil {
		return nil, err
	}

	s.log.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	if domain.IsBlank(username) {
		return nil, domain.NewValidationError("username", "username cannot be empty")
	}

	user, err := s.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateEmail does not validate the address; an empty string clears it.
func (s *userService) UpdateEmail(ctx context.Context, userID uuid.UUID, newEmail string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	user.ChangeEmail(newEmail)

	ctx = changeset.Begin(ctx)
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return err
	}
	return s.userRepository.SaveChanges(ctx)
}
