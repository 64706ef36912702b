package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegisterUser = "user registered successfully"
	MessageSuccessGetUser      = "success get user"
	MessageSuccessUpdateEmail  = "email updated successfully"

	MessageFailedRegisterUser = "failed to register user"
	MessageFailedGetUser      = "failed to get user"
	MessageFailedUpdateEmail  = "failed to update email"

	ErrUserNotFound      = errors.New("user not found")
	ErrUserNotRegistered = errors.New("user must be registered")
	ErrDuplicateUsername = errors.New("username is already taken")
)

type (
	RegisterUserRequest struct {
		Username string `json:"username" validate:"required,notblank,max=100"`
		Password string `json:"password" validate:"required,min=8,max=72"`
		Email    string `json:"email" validate:"omitempty,max=200"`
	}

	UpdateEmailRequest struct {
		Email string `json:"email" validate:"max=200"`
	}

	UserResponse struct {
		ID          string    `json:"id"`
		Username    string    `json:"username"`
		Email       string    `json:"email,omitempty"`
		RecipeIDs   []string  `json:"recipe_ids"`
		FavoriteIDs []string  `json:"favorite_recipe_ids"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
