package user

import (
	"context"
	"time"

	"recipe-management/entities"
	"recipe-management/pkg/changeset"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// UserRepository lookups return gorm.ErrRecordNotFound when no user matches.
	// Writes are staged until SaveChanges.
	UserRepository interface {
		GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
		GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
		AddUser(ctx context.Context, user *entities.User) error
		UpdateUser(ctx context.Context, user *entities.User) error
		SaveChanges(ctx context.Context) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) hydrated(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Recipes", func(db *gorm.DB) *gorm.DB { return db.Order("name asc") }).
		Preload("Favorites", func(db *gorm.DB) *gorm.DB { return db.Order("created_at asc") })
}

func (r *userRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var user entities.User
	if err := r.hydrated(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	if err := r.hydrated(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) AddUser(ctx context.Context, user *entities.User) error {
	return changeset.Stage(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(user).Error
	})
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return changeset.Stage(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Model(&entities.User{}).
			Where("id = ?", user.ID).
			Updates(map[string]interface{}{
				"username":      user.Username,
				"email":         user.Email,
				"password_hash": user.PasswordHash,
				"updated_at":    time.Now().UTC(),
			}).Error
	})
}

func (r *userRepository) SaveChanges(ctx context.Context) error {
	return changeset.Save(ctx, r.db)
}
