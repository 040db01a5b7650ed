package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Authorization gate rejections, checked in this order by the verifier.
	ErrTokenMissing   = errors.New("token missing")
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrTokenExpired   = errors.New("token expired")
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// AuthClaims is the identity resolved from a verified token. It carries the
// subject only; handlers that need the full record go through UserService.
type AuthClaims struct {
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type AuthService interface {
	Register(ctx context.Context, req UserSaveRequest) (*User, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Authorize(tokenString string) (*AuthClaims, error)
}
