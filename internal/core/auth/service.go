package auth

import (
	"context"
	"errors"

	"myflix/internal/domain"
)

type service struct {
	users  domain.UserRepository
	hasher *PasswordHasher
	tokens *TokenManager
}

func NewService(users domain.UserRepository, hasher *PasswordHasher, tokens *TokenManager) domain.AuthService {
	return &service{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

func (s *service) Register(ctx context.Context, req domain.UserSaveRequest) (*domain.User, error) {
	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	birthday, err := req.ParseBirthday()
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username: req.Username,
		Password: hashed,
		Email:    req.Email,
		Birthday: birthday,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credential pair and mints a token for the identity.
// Unknown username and wrong password collapse into the same failure so the
// response never reveals whether the account exists. Store failures stay
// distinct so the HTTP layer can report a server error instead.
func (s *service) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(req.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, err
	}

	return &domain.AuthResponse{
		User:  user,
		Token: token,
	}, nil
}

func (s *service) Authorize(tokenString string) (*domain.AuthClaims, error) {
	return s.tokens.Verify(tokenString)
}
