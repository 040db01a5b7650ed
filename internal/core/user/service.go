// Package user
package user

import (
	"context"

	"myflix/internal/core/auth"
	"myflix/internal/domain"

	"github.com/google/uuid"
)

type service struct {
	repo   domain.UserRepository
	hasher *auth.PasswordHasher
}

func NewService(repo domain.UserRepository, hasher *auth.PasswordHasher) domain.UserService {
	return &service{
		repo:   repo,
		hasher: hasher,
	}
}

func (s *service) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// Update replaces the profile fields and re-hashes the supplied password.
// The returned record reflects the stored state, favorites included.
func (s *service) Update(ctx context.Context, req domain.UserSaveRequest, username string) (*domain.User, error) {
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

	if err := s.repo.Update(ctx, user, username); err != nil {
		return nil, err
	}

	return s.repo.GetByUsername(ctx, user.Username)
}

func (s *service) Delete(ctx context.Context, username string) error {
	return s.repo.Delete(ctx, username)
}

func (s *service) AddFavorite(ctx context.Context, username string, movieID uuid.UUID) (*domain.User, error) {
	if err := s.repo.AddFavorite(ctx, username, movieID); err != nil {
		return nil, err
	}
	return s.repo.GetByUsername(ctx, username)
}

func (s *service) RemoveFavorite(ctx context.Context, username string, movieID uuid.UUID) (*domain.User, error) {
	if err := s.repo.RemoveFavorite(ctx, username, movieID); err != nil {
		return nil, err
	}
	return s.repo.GetByUsername(ctx, username)
}
