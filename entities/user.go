package entities

import (
	"recipe-management/domain"

	"github.com/google/uuid"
)

// User is the aggregate root for authored recipes and favorite entries.
// Recipes and Favorites are only populated by hydrating reads.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"size:200" json:"email,omitempty"`
	PasswordHash string    `gorm:"size:500;not null" json:"-"`

	Recipes   []*Recipe   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"recipes,omitempty"`
	Favorites []*Favorite `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"favorites,omitempty"`
	Timestamp
}

func NewUser(username, passwordHash, email string) (*User, error) {
	if domain.IsBlank(username) {
		return nil, domain.NewValidationError("username", "username cannot be empty")
	}
	if domain.IsBlank(passwordHash) {
		return nil, domain.NewValidationError("password_hash", "password hash cannot be empty")
	}

	return &User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}, nil
}

// ChangeEmail accepts any value, including the empty string.
func (u *User) ChangeEmail(newEmail string) {
	u.Email = newEmail
}

// AddFavorite is a no-op when a favorite for the same recipe is already held.
func (u *User) AddFavorite(favorite *Favorite) {
	if favorite == nil || u.HasFavorite(favorite.RecipeID) {
		return
	}
	u.Favorites = append(u.Favorites, favorite)
}

// RemoveFavorite drops every entry pointing at recipeID.
func (u *User) RemoveFavorite(recipeID uuid.UUID) {
	kept := u.Favorites[:0]
	for _, f := range u.Favorites {
		if f.RecipeID != recipeID {
			kept = append(kept, f)
		}
	}
	for i := len(kept); i < len(u.Favorites); i++ {
		u.Favorites[i] = nil
	}
	u.Favorites = kept
}

func (u *User) HasFavorite(recipeID uuid.UUID) bool {
	for _, f := range u.Favorites {
		if f.RecipeID == recipeID {
			return true
		}
	}
	return false
}
