// Package domain
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
)

type User struct {
	ID        uuid.UUID   `json:"id"`
	Username  string      `json:"username"`
	Password  string      `json:"-"`
	Email     string      `json:"email"`
	Birthday  *time.Time  `json:"birthday,omitempty"`
	Favorites []uuid.UUID `json:"favorite_movies"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type UserSaveRequest struct {
	Username string `json:"username" validate:"required,min=5,alphanum"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Birthday string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
}

// ParseBirthday converts the optional YYYY-MM-DD field into a time value.
func (r UserSaveRequest) ParseBirthday() (*time.Time, error) {
	if r.Birthday == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", r.Birthday)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

type UserRepository interface {
	List(ctx context.Context) ([]*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User, username string) error
	Delete(ctx context.Context, username string) error
	AddFavorite(ctx context.Context, username string, movieID uuid.UUID) error
	RemoveFavorite(ctx context.Context, username string, movieID uuid.UUID) error
}

type UserService interface {
	List(ctx context.Context) ([]*User, error)
	Get(ctx context.Context, username string) (*User, error)
	Update(ctx context.Context, req UserSaveRequest, username string) (*User, error)
	Delete(ctx context.Context, username string) error
	AddFavorite(ctx context.Context, username string, movieID uuid.UUID) (*User, error)
	RemoveFavorite(ctx context.Context, username string, movieID uuid.UUID) (*User, error)
}
